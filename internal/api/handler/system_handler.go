package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-portal/backend/pkg/response"
)

// SystemHandler 健康检查与 API 索引
type SystemHandler struct {
	pingDB func(ctx context.Context) error
	logger *zap.Logger
}

// NewSystemHandler 创建 SystemHandler；pingDB 用于探测数据库连通性
func NewSystemHandler(pingDB func(ctx context.Context) error, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{pingDB: pingDB, logger: logger}
}

// Health 存活探针（含数据库连通性）
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pingDB(ctx); err != nil {
		h.logger.Warn("健康检查失败", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "connected",
	})
}

// Index API 索引
// GET /
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "社团管理系统 API",
		"endpoints": gin.H{
			"auth":        "/api/auth",
			"members":     "/api/members",
			"files":       "/api/files",
			"community":   "/api/community",
			"departments": "/api/departments",
			"health":      "/health",
		},
	})
}

// NoRoute 未匹配路由
func (h *SystemHandler) NoRoute(c *gin.Context) {
	response.NotFound(c, "找不到此路由")
}
