// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：ed.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：file(文件分发)、folder(文件夹)、user(账号)、auth(认证)、apikey(接口密钥)、audit(审计)
// 动作：存储相关(uploaded/deleted/downloaded/assigned)、账号相关(created/updated/deleted)

const (
	// 文件分发领域.
	TopicFileUploaded   = "ed.file.uploaded"   // 文件写入对象存储且元数据落库
	TopicFileDeleted    = "ed.file.deleted"    // 文件及其分配关系删除
	TopicFileDownloaded = "ed.file.downloaded" // 用户获取了下载链接
	TopicFileAssigned   = "ed.file.assigned"   // 文件分配给一批用户

	// 文件夹领域.
	TopicFolderCreated = "ed.folder.created" // 用户创建了 PDF 文件夹
	TopicFolderDeleted = "ed.folder.deleted" // 文件夹删除，成员文件回到未分组

	// 账号领域.
	TopicUserCreated            = "ed.user.created"             // 账号创建（注册或管理员建立）
	TopicUserUpdated            = "ed.user.updated"             // 账号资料或状态变更
	TopicUserDeleted            = "ed.user.deleted"             // 账号删除，关联数据级联清理
	TopicUserSubscriptionToggle = "ed.user.subscription.toggle" // 订阅开关切换

	// 认证领域.
	TopicPasswordResetRequested = "ed.auth.password_reset.requested" // 发起找回密码
	TopicPasswordResetCompleted = "ed.auth.password_reset.completed" // 重置完成，令牌已消费

	// 接口密钥领域.
	TopicAPIKeyCreated = "ed.apikey.created" // 新密钥签发
	TopicAPIKeyRevoked = "ed.apikey.revoked" // 密钥吊销

	// 审计领域：所有需要落库的操作统一走该主题，由后台消费者写入审计表.
	TopicAuditRecord = "ed.audit.record"
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 文件相关主题集合.
	FileTopics = []string{
		TopicFileUploaded, TopicFileDeleted,
		TopicFileDownloaded, TopicFileAssigned,
	}

	// 文件夹相关主题集合.
	FolderTopics = []string{
		TopicFolderCreated, TopicFolderDeleted,
	}

	// 账号相关主题集合.
	UserTopics = []string{
		TopicUserCreated, TopicUserUpdated,
		TopicUserDeleted, TopicUserSubscriptionToggle,
	}

	// 认证相关主题集合.
	AuthTopics = []string{
		TopicPasswordResetRequested, TopicPasswordResetCompleted,
	}

	// 接口密钥相关主题集合.
	APIKeyTopics = []string{
		TopicAPIKeyCreated, TopicAPIKeyRevoked,
	}
)
