package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	errs    *errorWriter
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, errs *errorWriter) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, errs: errs}
}

// Register 注册账号（同时建立社员档案）
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "注册成功", gin.H{"token": result.Token, "user": result.User})
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "登录成功", gin.H{"token": result.Token, "user": result.User})
}

// Me 获取当前用户信息
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	me, err := h.authSvc.Me(c.Request.Context(), id.UserID)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"user": me})
}

// Logout 用户登出（吊销当前 Token）
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt, ok := MustGetToken(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "已登出", nil)
}
