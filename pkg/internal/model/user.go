package model

import (
	"time"
)

// Role 请求方角色.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Status 账户状态.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// User 账户模型. 注册产生 PENDING 账户，管理员创建可直接指定状态.
type User struct {
	ID           uint   `gorm:"primaryKey"           json:"id"`
	Email        string `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:128"             json:"-"`
	Name         string `gorm:"size:255"             json:"name"`
	Role         Role   `gorm:"size:16;index"        json:"role"`
	Status       Status `gorm:"size:16;index"        json:"status"`
	// 订阅开关，由管理员切换
	SubscriptionActive bool      `json:"subscription_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsAdmin 判断是否为管理员.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile 与 User 一对一的业务资料.
// 设备标记与歇业日期区间以 JSON 文本存储以保持实现简单.
type UserProfile struct {
	ID            uint      `gorm:"primaryKey"  json:"id"`
	UserID        uint      `gorm:"uniqueIndex" json:"user_id"`
	BusinessName  string    `gorm:"size:255"    json:"business_name"`
	EquipmentJSON string    `gorm:"type:text"   json:"-"`
	ClosuresJSON  string    `gorm:"type:text"   json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PasswordResetToken 密码重置 token. 只保存哈希，明文只在邮件里出现一次.
// 同一用户同时最多存在一个未使用的 token（新申请会清掉旧的未使用记录）.
type PasswordResetToken struct {
	ID        uint       `gorm:"primaryKey"          json:"id"`
	UserID    uint       `gorm:"index"               json:"user_id"`
	TokenHash string     `gorm:"size:64;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"index"               json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Used 判断 token 是否已被消费.
func (t *PasswordResetToken) Used() bool {
	return t.UsedAt != nil
}

// Expired 判断 token 在给定时间是否过期.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
