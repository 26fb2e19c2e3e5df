package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
)

// RegisterAuthRoutes 注册认证相关路由.
func RegisterAuthRoutes(g *gin.RouterGroup) {
	authRoutes := g.Group("/auth")
	{
		authRoutes.POST("/register", handle.Register)
		authRoutes.POST("/login", handle.Login)
		authRoutes.POST("/forgot-password", handle.ForgotPassword)
		authRoutes.POST("/reset-password", handle.ResetPassword)

		// 改密需要已登录身份
		authRoutes.POST("/change-password", requireAuth(), handle.ChangePassword)
	}
}
