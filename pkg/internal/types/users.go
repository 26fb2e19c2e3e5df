package types

import "time"

// UserInfo 账号信息，不含口令散列.
type UserInfo struct {
	ID                 uint      `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	SubscriptionActive bool      `json:"subscription_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateUserRequest 管理员建立账号，状态由调用方指定.
type CreateUserRequest struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password" rule:"password"`
	Name     string `json:"name,omitempty"    rule:"max=120"`
	Role     string `json:"role,omitempty"    rule:"omitempty,oneof=USER ADMIN"`
	Status   string `json:"status,omitempty"  rule:"omitempty,oneof=PENDING ACTIVE SUSPENDED"`
}

// UpdateUserRequest 部分更新，nil 字段不变.
type UpdateUserRequest struct {
	Name               *string `json:"name,omitempty"                rule:"omitempty,max=120"`
	Role               *string `json:"role,omitempty"                rule:"omitempty,oneof=USER ADMIN"`
	Status             *string `json:"status,omitempty"              rule:"omitempty,oneof=PENDING ACTIVE SUSPENDED"`
	SubscriptionActive *bool   `json:"subscription_active,omitempty"`
}

// UserResponse 单账号响应.
type UserResponse struct {
	User UserInfo `json:"user"`
}

// ListUsersRequest 管理员账号列表查询参数.
type ListUsersRequest struct {
	Page     int `form:"page"      rule:"omitempty,min=1"`
	PageSize int `form:"page_size" rule:"omitempty,min=1,max=200"`
}

// ListUsersResponse 账号列表响应.
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
	Total int64      `json:"total"`
}
