package service

import "errors"

// 业务哨兵错误，由 handle 层映射到 HTTP 状态码；错误文案即对外的错误码字符串.
// 可见性裁剪导致的"无权访问"统一表现为 ErrNotFound，避免泄露资源存在性.
// ErrEmailExists 的文案沿用既有对外契约，不做 snake_case 归一.
var (
	ErrNotFound           = errors.New("not_found")
	ErrForbidden          = errors.New("forbidden")
	ErrFolderExists       = errors.New("folder_exists")
	ErrInvalidFolderName  = errors.New("invalid_folder_name")
	ErrNotPDF             = errors.New("not_pdf")
	ErrFolderNotFound     = errors.New("folder_not_found")
	ErrEmailExists        = errors.New("Email already exists")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrExpiredToken       = errors.New("expired_token")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountSuspended   = errors.New("account_suspended")
	ErrUnsupportedType    = errors.New("unsupported_file_type")
	ErrFileTooLarge       = errors.New("file_too_large")
)
