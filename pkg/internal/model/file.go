package model

import (
	"strings"
	"time"
)

// File 文件元数据. 对象本体存放在 S3，这里只记录键与属性.
// UploadedByID 是对上传者的弱引用：删除上传者时置空，文件保留.
type File struct {
	ID           string    `gorm:"primaryKey;size:26" json:"id"` // ULID
	Title        string    `gorm:"size:255"           json:"title"`
	OriginalName string    `gorm:"size:512"           json:"original_name"`
	ObjectKey    string    `gorm:"size:1024;index"    json:"object_key"`
	Mime         string    `gorm:"size:255"           json:"mime"`
	Size         int64     `json:"size"`
	UploadedByID *uint     `gorm:"index"              json:"uploaded_by_id,omitempty"`
	PdfFolderID  *uint     `gorm:"index"              json:"pdf_folder_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	UploadedBy *User `gorm:"foreignKey:UploadedByID;constraint:OnDelete:SET NULL" json:"uploaded_by,omitempty"`
}

// IsPDF 按 mime 或文件名后缀判断是否为 PDF（大小写不敏感）.
func (f *File) IsPDF() bool {
	if strings.Contains(strings.ToLower(f.Mime), "pdf") {
		return true
	}

	return strings.HasSuffix(strings.ToLower(f.OriginalName), ".pdf")
}

// FileAssignment 文件与用户的关联，由管理员建立.
// (file_id, user_id) 组合唯一；创建是幂等的，重复指派返回既有记录.
type FileAssignment struct {
	ID           uint      `gorm:"primaryKey"                         json:"id"`
	FileID       string    `gorm:"size:26;index:idx_file_user,unique" json:"file_id"`
	UserID       uint      `gorm:"index:idx_file_user,unique"         json:"user_id"`
	AssignedByID uint      `gorm:"index"                              json:"assigned_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// PdfFolder 用户自有的 PDF 文件夹. 名称在同一 owner 下唯一，
// 由数据库唯一索引保证（不做 check-then-insert 预检查）.
type PdfFolder struct {
	ID        uint      `gorm:"primaryKey"                          json:"id"`
	Name      string    `gorm:"size:60;index:idx_owner_name,unique" json:"name"`
	OwnerID   uint      `gorm:"index:idx_owner_name,unique"         json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
