package types

import "time"

// UploaderInfo 文件列表内嵌的上传者标识，上传者被删除后为空.
type UploaderInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// FileInfo 文件摘要.
type FileInfo struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	OriginalName string        `json:"original_name"`
	Mime         string        `json:"mime"`
	Size         int64         `json:"size"`
	PdfFolderID  *uint         `json:"pdf_folder_id,omitempty"`
	UploadedBy   *UploaderInfo `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ListFilesRequest 文件列表查询，scope 取 mine|assigned|all.
type ListFilesRequest struct {
	Scope string `form:"scope" rule:"omitempty,oneof=mine assigned all"`
}

// ListFilesResponse 文件列表响应，按创建时间倒序.
type ListFilesResponse struct {
	Files []FileInfo `json:"files"`
	Total int        `json:"total"`
}

// UploadFileRequest 上传表单字段，文件本体走 multipart 的 file 字段.
type UploadFileRequest struct {
	Title string `form:"title" rule:"omitempty,max=255"`
}

// FileResponse 单文件响应.
type FileResponse struct {
	File FileInfo `json:"file"`
}

// DownloadLinkResponse 下载链接响应（非重定向模式下返回）.
type DownloadLinkResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"` // 秒
}

// MoveFileToFolderRequest 调整文件所属文件夹，PdfFolderID 为 null 表示移出.
// OwnerID 仅管理员可用，代表代其操作的文件夹所有者.
type MoveFileToFolderRequest struct {
	PdfFolderID *uint `json:"pdf_folder_id"`
	OwnerID     *uint `json:"owner_id,omitempty"`
}
