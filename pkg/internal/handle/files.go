package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	"github.com/igorzgk/excel-delivery-sub000/pkg/log"
)

// ListFiles 处理文件列表请求.
//
//	@Summary		文件列表
//	@Description	scope=mine 列出自己上传的，assigned 列出被分配的，all 仅管理员可用
//	@Tags			文件
//	@Produce		json
//	@Param			scope	query		string					false	"mine|assigned|all"
//	@Success		200		{object}	types.ListFilesResponse	"文件列表"
//	@Security		BearerAuth
//	@Router			/api/v1/files [get]
func ListFiles(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.ListFilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		return
	}

	svc := service.NewFileService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), actor, req.Scope)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadFile 处理文件上传请求.
//
//	@Summary		上传文件
//	@Description	接收 multipart 表单，file 字段为文件本体，仅接受 Excel 与 PDF
//	@Tags			文件
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file				true	"文件内容"
//	@Param			title	formData	string				false	"展示标题，缺省用原始文件名"
//	@Success		201		{object}	types.FileInfo		"文件元数据"
//	@Failure		400		{object}	map[string]string	"类型不支持"
//	@Failure		413		{object}	map[string]string	"超出大小限制"
//	@Security		BearerAuth
//	@Router			/api/v1/files [post]
func UploadFile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		log.Logger().Warn().Err(err).Msg("missing multipart file field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})

		return
	}

	req := types.UploadFileRequest{Title: c.PostForm("title")}

	svc := service.NewFileService(c.Request.Context())

	info, err := svc.Upload(c.Request.Context(), actor, &req, header)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

// DownloadFile 处理下载请求，302 重定向到限时预签名 URL.
//
//	@Summary		下载文件
//	@Description	对可见文件签发预签名下载链接并重定向；无权访问表现为 404
//	@Tags			文件
//	@Produce		json
//	@Param			id	path	string	true	"文件ID"
//	@Success		302	"重定向到预签名 URL"
//	@Failure		404	{object}	map[string]string	"文件不存在或不可见"
//	@Security		BearerAuth
//	@Router			/api/v1/files/{id}/download [get]
func DownloadFile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	svc := service.NewFileService(c.Request.Context())

	link, err := svc.Download(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, link.URL)
}

// DeleteFile 处理删除文件请求.
//
//	@Summary		删除文件
//	@Description	删除文件行及其全部分配，再尽力移除对象存储中的本体
//	@Tags			文件
//	@Produce		json
//	@Param			id	path		string				true	"文件ID"
//	@Success		200	{object}	types.OKResponse	"删除成功"
//	@Failure		404	{object}	map[string]string	"文件不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/files/{id} [delete]
func DeleteFile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	svc := service.NewFileService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}

// MoveFileToFolder 处理将 PDF 移入/移出文件夹的请求.
//
//	@Summary		调整文件所属文件夹
//	@Description	仅 PDF 可入文件夹；pdf_folder_id 为 null 表示移出
//	@Tags			文件
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"文件ID"
//	@Param			body	body		types.MoveFileToFolderRequest	true	"目标文件夹"
//	@Success		200		{object}	types.FileResponse				"更新后的文件"
//	@Failure		400		{object}	map[string]string				"非 PDF 或文件夹无效"
//	@Failure		404		{object}	map[string]string				"文件不存在或不可见"
//	@Security		BearerAuth
//	@Router			/api/v1/files/{id}/pdf-folder [patch]
func MoveFileToFolder(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.MoveFileToFolderRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewFileService(c.Request.Context())

	info, err := svc.MoveToFolder(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.FileResponse{File: *info})
}
