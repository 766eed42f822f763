package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "club-portal/backend/pkg/errors"
	"club-portal/backend/pkg/response"
)

// errorWriter 将业务错误映射为 HTTP 响应
// 开发模式下附带底层错误详情，生产模式只返回对外消息
type errorWriter struct {
	devMode bool
	logger  *zap.Logger
}

func newErrorWriter(devMode bool, logger *zap.Logger) *errorWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &errorWriter{devMode: devMode, logger: logger}
}

// handle 按错误分类写入响应
func (w *errorWriter) handle(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := kind.HTTPStatus()

	message := "服务器内部错误"
	var appErr *apperrors.AppError
	if kind != apperrors.KindInternal && errors.As(err, &appErr) {
		message = appErr.Message
	} else {
		w.logger.Error("请求处理失败",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	w.write(c, status, message, err)
}

// bindFailed 请求参数绑定或校验失败
func (w *errorWriter) bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.write(c, http.StatusRequestEntityTooLarge, "请求体过大", err)
		return
	}
	w.write(c, http.StatusBadRequest, "参数校验失败", err)
}

func (w *errorWriter) write(c *gin.Context, status int, message string, err error) {
	if w.devMode && err != nil {
		response.ErrorWithDetails(c, status, message, err.Error())
		return
	}
	response.Error(c, status, message)
}

// parseID 解析路径参数中的正整数 ID；失败时写入 400 并返回 false
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
