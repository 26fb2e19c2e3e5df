// Package types 定义 HTTP 层请求与响应结构.
package types

// RegisterRequest 注册请求，新账号初始状态为 PENDING.
type RegisterRequest struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password" rule:"password"`
	Name     string `json:"name,omitempty"    rule:"max=120"`
}

// LoginRequest 登录请求.
type LoginRequest struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
}

// LoginResponse 登录响应，Token 为 Bearer JWT.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// ChangePasswordRequest 自助改密请求.
type ChangePasswordRequest struct {
	OldPassword string `binding:"required" json:"old_password"`
	NewPassword string `binding:"required" json:"new_password" rule:"password"`
}

// ForgotPasswordRequest 找回密码请求，无论邮箱是否存在都返回相同响应.
type ForgotPasswordRequest struct {
	Email string `binding:"required,email" json:"email"`
}

// ResetPasswordRequest 凭重置令牌设置新密码.
type ResetPasswordRequest struct {
	Token       string `binding:"required" json:"token"`
	NewPassword string `binding:"required" json:"new_password" rule:"password"`
}

// OKResponse 通用成功响应.
type OKResponse struct {
	OK bool `json:"ok"`
}
