package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"` // 仅开发模式返回
}

// ── 成功响应 ──
// 成功响应形如 {"message": "...", "<资源名>": payload, ...}

// OK 200 成功响应
func OK(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, withMessage(message, payload))
}

// Created 201 创建成功
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, withMessage(message, payload))
}

func withMessage(message string, payload gin.H) gin.H {
	body := make(gin.H, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["message"] = message
	return body
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, message, details string) {
	c.JSON(httpStatus, ErrorBody{Error: message, Details: details})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}
