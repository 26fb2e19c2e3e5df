package router

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
)

// RegisterFileRoutes 注册文件操作相关路由.
func RegisterFileRoutes(g *gin.RouterGroup) {
	filesRoutes := g.Group("/files", requireAuth())
	{
		// 列表与上传
		filesRoutes.GET("", handle.ListFiles)
		filesRoutes.POST("", requireAdmin(), handle.UploadFile)

		// 单个文件操作
		singleGroup := filesRoutes.Group("/:id")
		{
			singleGroup.GET("/download", handle.DownloadFile)
			singleGroup.PATCH("/pdf-folder", handle.MoveFileToFolder)
			singleGroup.DELETE("", requireAdmin(), handle.DeleteFile)
		}
	}

	// 文件分配，仅管理员
	g.POST("/assignments", requireAuth(), requireAdmin(), handle.AssignFile)
}
