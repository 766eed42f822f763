package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"club-portal/backend/internal/policy"
)

// quietPaths 健康检查等高频请求成功时只记 Debug
var quietPaths = map[string]struct{}{
	"/health": {},
}

// Logger 请求日志中间件
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ce := logger.Check(requestLevel(c.Request.URL.Path, status), requestMessage(status))
		if ce == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "<unmatched>"
		}
		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.Int("bytes", c.Writer.Size()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if v, ok := c.Get("identity"); ok {
			if id, ok := v.(*policy.Identity); ok && id != nil {
				fields = append(fields, zap.Int64("user_id", id.UserID), zap.String("role", string(id.Role)))
			}
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			fields = append(fields, zap.Strings("errors", errs.Errors()))
		}

		ce.Write(fields...)
	}
}

func requestLevel(path string, status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	}
	if _, ok := quietPaths[path]; ok {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func requestMessage(status int) string {
	switch {
	case status >= 500:
		return "请求处理失败"
	case status >= 400:
		return "客户端错误"
	default:
		return "请求完成"
	}
}
