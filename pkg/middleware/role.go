package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin 管理员门禁. 未认证 401，已认证但非管理员 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
