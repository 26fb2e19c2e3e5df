package types

import "time"

// AuditEntry 审计记录.
type AuditEntry struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	ActorID   *uint     `json:"actor_id,omitempty"`
	Target    string    `json:"target,omitempty"`
	TargetID  string    `json:"target_id,omitempty"`
	Meta      string    `json:"meta,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListAuditRequest 审计查询参数，可按动作过滤.
type ListAuditRequest struct {
	Action   string `form:"action"    rule:"omitempty,max=60"`
	Page     int    `form:"page"      rule:"omitempty,min=1"`
	PageSize int    `form:"page_size" rule:"omitempty,min=1,max=200"`
}

// ListAuditResponse 审计列表，按时间倒序.
type ListAuditResponse struct {
	Entries []AuditEntry `json:"entries"`
	Total   int64        `json:"total"`
}
