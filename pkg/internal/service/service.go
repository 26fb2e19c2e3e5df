// Package service 实现业务逻辑层. 各服务从请求 context 取存储客户端，
// 自身无状态，按请求构造.
package service

import (
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
)

// Principal 当前请求方身份，由认证中间件从会话或 API Key 解析.
type Principal struct {
	UserID uint
	Role   model.Role
	// ViaAPIKey 表示请求通过集成密钥而非用户会话认证.
	ViaAPIKey bool
}

// IsAdmin 判断请求方是否为管理员. API Key 等同管理员能力（仅限上传集成）.
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// actorID 返回用于审计归属的账号指针，API Key 请求无账号归属.
func (p Principal) actorID() *uint {
	if p.ViaAPIKey || p.UserID == 0 {
		return nil
	}

	id := p.UserID

	return &id
}
