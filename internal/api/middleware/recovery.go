package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-portal/backend/pkg/response"
)

// Recovery 捕获 panic，记录日志后返回统一的 500 响应
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("请求处理发生 panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		response.InternalError(c)
		c.Abort()
	})
}
