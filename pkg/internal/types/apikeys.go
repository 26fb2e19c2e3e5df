package types

import "time"

// APIKeyInfo 接口密钥信息，不含明文与散列.
type APIKeyInfo struct {
	ID         uint       `json:"id"`
	Label      string     `json:"label"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// CreateAPIKeyRequest 签发接口密钥.
type CreateAPIKeyRequest struct {
	Label string `binding:"required" json:"label" rule:"min=1,max=120"`
}

// CreateAPIKeyResponse 签发结果，Key 明文仅在本次响应返回一次.
type CreateAPIKeyResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Key   string `json:"key"`
}

// ListAPIKeysResponse 密钥列表.
type ListAPIKeysResponse struct {
	Keys []APIKeyInfo `json:"keys"`
}
