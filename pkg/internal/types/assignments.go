package types

// AssignFileRequest 将文件分配给用户，重复分配幂等.
type AssignFileRequest struct {
	FileID string `binding:"required" json:"file_id" rule:"max=26"`
	UserID uint   `binding:"required" json:"user_id"`
}

// AssignFileResponse 分配结果，Existing 为 true 表示命中已有分配（HTTP 200 而非 201）.
type AssignFileResponse struct {
	OK       bool `json:"ok"`
	ID       uint `json:"id"`
	Existing bool `json:"existing,omitempty"`
}
