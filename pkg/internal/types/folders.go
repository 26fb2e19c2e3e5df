package types

import "time"

// FolderInfo PDF 文件夹信息.
type FolderInfo struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFolderRequest 创建文件夹请求.
// OwnerID 仅管理员可用，代任意用户建立文件夹.
type CreateFolderRequest struct {
	Name    string `binding:"required" json:"name" rule:"folder_name"`
	OwnerID *uint  `json:"owner_id,omitempty"`
}

// RenameFolderRequest 重命名文件夹请求.
type RenameFolderRequest struct {
	Name string `binding:"required" json:"name" rule:"folder_name"`
}

// FolderResponse 单文件夹响应.
type FolderResponse struct {
	Folder FolderInfo `json:"folder"`
}

// ListFoldersResponse 当前用户的文件夹列表.
type ListFoldersResponse struct {
	Folders []FolderInfo `json:"folders"`
}
