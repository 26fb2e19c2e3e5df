package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
)

// RegisterFolderRoutes 注册 PDF 文件夹相关路由.
func RegisterFolderRoutes(g *gin.RouterGroup) {
	folderRoutes := g.Group("/pdf-folders", requireAuth())
	{
		folderRoutes.GET("", handle.ListFolders)
		folderRoutes.POST("", handle.CreateFolder)
		folderRoutes.PATCH("/:id", handle.RenameFolder)
		folderRoutes.DELETE("/:id", handle.DeleteFolder)
	}
}
