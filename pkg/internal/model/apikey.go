package model

import "time"

// APIKey 集成方密钥. 明文只在创建响应里出现一次，之后只比对 SHA-256 哈希.
type APIKey struct {
	ID         uint       `gorm:"primaryKey"          json:"id"`
	Label      string     `gorm:"size:255"            json:"label"`
	KeyHash    string     `gorm:"size:64;uniqueIndex" json:"-"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// AllModels 返回需要迁移的全部模型.
func AllModels() []any {
	return []any{
		&User{},
		&UserProfile{},
		&PasswordResetToken{},
		&File{},
		&FileAssignment{},
		&PdfFolder{},
		&AuditLog{},
		&APIKey{},
	}
}
