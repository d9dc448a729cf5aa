// Package middleware 中间件
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

// RequireRole 角色检查中间件
// 在进入业务处理之前校验当前用户是否拥有任一指定角色
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, response.CodeInvalidToken)
			c.Abort()
			return
		}

		current, ok := role.(string)
		if ok {
			for _, r := range roles {
				if current == r {
					c.Next()
					return
				}
			}
		}

		response.ErrorWithMsg(c, response.CodeForbidden, "没有权限执行此操作")
		c.Abort()
	}
}
