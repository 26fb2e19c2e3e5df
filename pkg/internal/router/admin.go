package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
)

// RegisterAdminRoutes 注册管理端路由：账号、接口密钥与审计.
func RegisterAdminRoutes(g *gin.RouterGroup) {
	adminRoutes := g.Group("/admin", requireAuth(), requireAdmin())
	{
		userRoutes := adminRoutes.Group("/users")
		{
			userRoutes.GET("", handle.ListUsers)
			userRoutes.POST("", handle.CreateUser)
			userRoutes.PATCH("/:id", handle.PatchUser)
			userRoutes.DELETE("/:id", handle.DeleteUser)
		}

		keyRoutes := adminRoutes.Group("/api-keys")
		{
			keyRoutes.GET("", handle.ListAPIKeys)
			keyRoutes.POST("", handle.CreateAPIKey)
			keyRoutes.DELETE("/:id", handle.RevokeAPIKey)
		}

		adminRoutes.GET("/audit", handle.ListAudit)
	}
}
