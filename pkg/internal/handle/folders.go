package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// folderID 解析路径里的文件夹 ID.
func folderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
		return 0, false
	}

	return uint(id), true
}

// CreateFolder 处理创建文件夹请求.
//
//	@Summary		创建文件夹
//	@Description	在当前用户名下创建 PDF 文件夹，同名冲突返回 400
//	@Tags			文件夹
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.CreateFolderRequest	true	"创建请求"
//	@Success		201		{object}	types.FolderResponse		"新文件夹"
//	@Failure		400		{object}	map[string]string			"同名文件夹已存在"
//	@Security		BearerAuth
//	@Router			/api/v1/pdf-folders [post]
func CreateFolder(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.CreateFolderRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewFolderService(c.Request.Context())

	folder, err := svc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.FolderResponse{Folder: *folder})
}

// ListFolders 处理文件夹列表请求.
//
//	@Summary		文件夹列表
//	@Description	列出当前用户自己的文件夹，按名称排序
//	@Tags			文件夹
//	@Produce		json
//	@Success		200	{object}	types.ListFoldersResponse	"文件夹列表"
//	@Security		BearerAuth
//	@Router			/api/v1/pdf-folders [get]
func ListFolders(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	svc := service.NewFolderService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RenameFolder 处理重命名文件夹请求.
//
//	@Summary		重命名文件夹
//	@Description	重命名自己的文件夹，非所有者表现为 404
//	@Tags			文件夹
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"文件夹ID"
//	@Param			body	body		types.RenameFolderRequest	true	"重命名请求"
//	@Success		200		{object}	types.FolderResponse		"更新后的文件夹"
//	@Failure		400		{object}	map[string]string			"同名文件夹已存在"
//	@Failure		404		{object}	map[string]string			"文件夹不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/pdf-folders/{id} [patch]
func RenameFolder(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	id, ok := folderID(c)
	if !ok {
		return
	}

	var req types.RenameFolderRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewFolderService(c.Request.Context())

	folder, err := svc.Rename(c.Request.Context(), actor, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.FolderResponse{Folder: *folder})
}

// DeleteFolder 处理删除文件夹请求.
//
//	@Summary		删除文件夹
//	@Description	删除文件夹并将其中文件移出，文件本体永不随文件夹删除
//	@Tags			文件夹
//	@Produce		json
//	@Param			id	path		int					true	"文件夹ID"
//	@Success		200	{object}	types.OKResponse	"删除成功"
//	@Failure		404	{object}	map[string]string	"文件夹不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/pdf-folders/{id} [delete]
func DeleteFolder(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	id, ok := folderID(c)
	if !ok {
		return
	}

	svc := service.NewFolderService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
