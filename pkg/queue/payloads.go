package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文件分发领域 --------------------------

// FileRef 标识文件及其在对象存储中的位置.
type FileRef struct {
	FileID      string `json:"file_id"`
	Bucket      string `json:"bucket,omitempty"`
	ObjectKey   string `json:"object_key,omitempty"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// FileUploadedPayload 文件写入对象存储且元数据落库.
type FileUploadedPayload struct {
	File         FileRef `json:"file"`
	UploadedByID uint    `json:"uploaded_by_id,omitempty"`
	OriginalName string  `json:"original_name,omitempty"`
}

// FileDeletedPayload 文件删除，含分配关系清理数量.
type FileDeletedPayload struct {
	File               FileRef `json:"file"`
	DeletedByID        uint    `json:"deleted_by_id,omitempty"`
	RemovedAssignments int64   `json:"removed_assignments,omitempty"`
}

// FileDownloadedPayload 用户获取了下载链接.
type FileDownloadedPayload struct {
	File     FileRef `json:"file"`
	UserID   uint    `json:"user_id"`
	ViaAdmin bool    `json:"via_admin,omitempty"`
}

// FileAssignedPayload 文件分配给一批用户，UserIDs 为本次新建的分配.
type FileAssignedPayload struct {
	File         FileRef `json:"file"`
	UserIDs      []uint  `json:"user_ids"`
	AssignedByID uint    `json:"assigned_by_id,omitempty"`
}

// -------------------------- 文件夹领域 --------------------------

// FolderPayload 文件夹创建/删除.
type FolderPayload struct {
	FolderID uint   `json:"folder_id"`
	Name     string `json:"name"`
	OwnerID  uint   `json:"owner_id"`
}

// -------------------------- 账号领域 --------------------------

// UserPayload 账号生命周期事件.
type UserPayload struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	Status  string `json:"status,omitempty"`
	ActorID uint   `json:"actor_id,omitempty"` // 执行操作的账号，自助操作时与 UserID 相同
}

// SubscriptionTogglePayload 订阅开关切换.
type SubscriptionTogglePayload struct {
	UserID  uint `json:"user_id"`
	Active  bool `json:"active"`
	ActorID uint `json:"actor_id,omitempty"`
}

// -------------------------- 认证领域 --------------------------

// PasswordResetPayload 找回密码流程事件，不携带令牌本身.
type PasswordResetPayload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// -------------------------- 接口密钥领域 --------------------------

// APIKeyPayload 接口密钥签发/吊销.
type APIKeyPayload struct {
	KeyID   uint   `json:"key_id"`
	Label   string `json:"label,omitempty"`
	ActorID uint   `json:"actor_id,omitempty"`
}

// -------------------------- 审计领域 --------------------------

// AuditRecordPayload 统一的审计记录，由后台消费者写入审计表.
// Meta 为可选的 JSON 片段，记录动作相关的补充信息.
type AuditRecordPayload struct {
	Action   string `json:"action"`
	ActorID  *uint  `json:"actor_id,omitempty"`
	Target   string `json:"target,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	Meta     string `json:"meta,omitempty"`
}
