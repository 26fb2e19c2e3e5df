package model

import "time"

// AuditAction 审计事件类型.
type AuditAction string

const (
	AuditFileUploaded       AuditAction = "file.uploaded"
	AuditFileDeleted        AuditAction = "file.deleted"
	AuditFileDownloaded     AuditAction = "file.downloaded"
	AuditFileAssigned       AuditAction = "file.assigned"
	AuditFolderCreated      AuditAction = "folder.created"
	AuditFolderDeleted      AuditAction = "folder.deleted"
	AuditUserCreated        AuditAction = "user.created"
	AuditUserUpdated        AuditAction = "user.updated"
	AuditUserDeleted        AuditAction = "user.deleted"
	AuditSubscriptionToggled AuditAction = "user.subscription_toggled"
	AuditPasswordReset      AuditAction = "auth.password_reset"
	AuditAPIKeyCreated      AuditAction = "apikey.created"
	AuditAPIKeyRevoked      AuditAction = "apikey.revoked"
)

// AuditLog 审计记录，只追加；应用层不更新也不删除.
// ActorID 为空表示系统行为. Meta 为不透明 JSON 文本.
type AuditLog struct {
	ID        uint        `gorm:"primaryKey"    json:"id"`
	Action    AuditAction `gorm:"size:64;index" json:"action"`
	ActorID   *uint       `gorm:"index"         json:"actor_id,omitempty"`
	Target    string      `gorm:"size:64"       json:"target,omitempty"`
	TargetID  string      `gorm:"size:64;index" json:"target_id,omitempty"`
	MetaJSON  string      `gorm:"type:text"     json:"meta,omitempty"`
	CreatedAt time.Time   `gorm:"index"         json:"created_at"`
}
