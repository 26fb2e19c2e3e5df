// Package router 管理路由配置，将路径绑定到 pkg/internal/handle 的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/middleware"
)

// RegisterRoutes 将全部业务路由注册到 /api/v1 下.
// 认证解析由全局 AuthMiddleware 完成，这里只做分组级门禁：
//
//	auth/*        开放（改密除外）
//	files/*       需要会话（上传与删除需要管理员或 API Key）
//	pdf-folders/* 需要会话
//	profile       需要会话
//	assignments   管理员
//	admin/*       管理员
//	health        开放
func RegisterRoutes(e *gin.Engine) {
	api := e.Group("/api/v1")

	RegisterAuthRoutes(api)
	RegisterFileRoutes(api)
	RegisterFolderRoutes(api)
	RegisterProfileRoutes(api)
	RegisterAdminRoutes(api)
	RegisterHealthCheckRoute(api)
}

// requireAuth 组装会话门禁，便于各注册函数复用.
func requireAuth() gin.HandlerFunc {
	return middleware.RequireAuth()
}

// requireAdmin 组装管理员门禁.
func requireAdmin() gin.HandlerFunc {
	return middleware.RequireAdmin()
}
