package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
)

// RegisterProfileRoutes 注册业务资料路由.
func RegisterProfileRoutes(g *gin.RouterGroup) {
	profileRoutes := g.Group("/profile", requireAuth())
	{
		profileRoutes.GET("", handle.GetProfile)
		profileRoutes.PUT("", handle.UpdateProfile)
	}
}
