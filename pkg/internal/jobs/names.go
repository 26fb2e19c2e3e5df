package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobResetTokenPurge = "auth.reset_token.purge"
)

// Cron 表达式常量.
const (
	CronResetTokenPurge = "20 3 * * *"
)
