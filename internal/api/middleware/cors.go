package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, X-Request-ID"
	// 导出下载需要读取 Content-Disposition，限流提示需要读取 X-RateLimit-* 与 Retry-After
	corsExposeHeaders = "Content-Disposition, X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After"
	corsMaxAge        = "600"
)

type originList struct {
	any     bool
	origins map[string]struct{}
}

func newOriginList(allowOrigins []string) originList {
	l := originList{origins: make(map[string]struct{}, len(allowOrigins))}
	for _, o := range allowOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			l.any = true
		default:
			l.origins[strings.ToLower(o)] = struct{}{}
		}
	}
	return l
}

func (l originList) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if l.any {
		return true
	}
	_, ok := l.origins[strings.ToLower(origin)]
	return ok
}

// CORS 跨域中间件
// 仅回显白名单内的 Origin；预检请求直接以 204 结束，不进入鉴权与业务处理
func CORS(allowOrigins []string) gin.HandlerFunc {
	list := newOriginList(allowOrigins)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Writer.Header().Add("Vary", "Origin")

		allowed := list.allows(origin)
		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
		}

		preflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""
		if !preflight {
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Max-Age", corsMaxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
