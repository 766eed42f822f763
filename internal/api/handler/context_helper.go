package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/policy"
	"club-portal/backend/pkg/response"
)

// 认证中间件写入 gin.Context 的键
const (
	ctxIdentity = "identity"
	ctxTokenJTI = "token_jti"
	ctxTokenExp = "token_exp"
)

// CurrentIdentity 从 Gin 上下文中提取调用者身份，未认证时返回 nil。
// 写操作直接把结果交给 Service，由权限规则处理未认证的情况。
func CurrentIdentity(c *gin.Context) *policy.Identity {
	v, exists := c.Get(ctxIdentity)
	if !exists {
		return nil
	}
	id, _ := v.(*policy.Identity)
	return id
}

// MustGetIdentity 提取调用者身份；缺失时写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetIdentity(c *gin.Context) (*policy.Identity, bool) {
	id := CurrentIdentity(c)
	if id == nil {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	return id, true
}

// MustGetToken 提取当前 Token 的 jti 与过期时间（登出时使用）
func MustGetToken(c *gin.Context) (string, time.Time, bool) {
	jti := c.GetString(ctxTokenJTI)
	exp, ok := c.Get(ctxTokenExp)
	if jti == "" || !ok {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}
	expiresAt, ok := exp.(time.Time)
	if !ok {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}
