// Package middleware 提供 Gin 中间件功能.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
)

const principalKey = "principal"

// AuthMiddleware 解析请求身份并写入 gin context.
// 支持两种凭证：Authorization: Bearer <jwt>（会话）与集成方 API Key 请求头.
// API Key 身份以 ViaAPIKey 标记，拥有管理员权限但不绑定具体用户.
// 本中间件只负责解析，不拦截；是否要求登录由 RequireAuth 决定.
func AuthMiddleware(cfg configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(cfg.APIKeyHeader); key != "" {
			ks := service.NewAPIKeyService(c.Request.Context())
			if _, err := ks.Authenticate(c.Request.Context(), key); err == nil {
				c.Set(principalKey, service.Principal{Role: model.RoleAdmin, ViaAPIKey: true})
				c.Next()

				return
			}

			nlog.Logger().Warn().Str("client_ip", c.ClientIP()).Msg("rejected api key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})

			return
		}

		header := c.GetHeader("Authorization")
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			principal, err := service.ParseToken(after)
			if err == nil {
				c.Set(principalKey, principal)
			}
		}

		c.Next()
	}
}

// RequireAuth 要求请求已通过 AuthMiddleware 解析出身份，否则 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(principalKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

// GetPrincipal 从 gin context 取出当前身份. 未认证时返回零值与 false.
func GetPrincipal(c *gin.Context) (service.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return service.Principal{}, false
	}

	p, ok := v.(service.Principal)

	return p, ok
}
