package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/policy"
	"club-portal/backend/pkg/jwt"
	"club-portal/backend/pkg/response"
)

// RevocationStore 已吊销 Token 的查询接口（Redis 实现）
type RevocationStore interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Token，不查询数据库。
// store 为 nil 或查询出错时跳过吊销检查（降级模式）。
func JWTAuth(jwtMgr *jwt.Manager, store RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token 无效或已过期")
			c.Abort()
			return
		}

		role, ok := policy.ParseRole(claims.Role)
		if !ok {
			response.Unauthorized(c, "Token 无效或已过期")
			c.Abort()
			return
		}

		if store != nil {
			if revoked, err := store.IsRevoked(c.Request.Context(), claims.ID); err == nil && revoked {
				response.Unauthorized(c, "Token 已失效，请重新登录")
				c.Abort()
				return
			}
		}

		// 将用户信息注入上下文
		c.Set("identity", &policy.Identity{
			UserID:       claims.UserID,
			Username:     claims.Username,
			Role:         role,
			DepartmentID: claims.DepartmentID,
		})
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("department_id", claims.DepartmentID)
		c.Set("token_jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireAction 路由层快速拒绝：角色不在操作的允许集合内直接返回 403。
// 部门范围与所有者判定仍由 Service 层在加载目标后完成。
func RequireAction(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("identity")
		id, _ := v.(*policy.Identity)
		if !exists || id == nil {
			response.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		if !policy.Allows(id.Role, action) {
			response.Forbidden(c, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}
