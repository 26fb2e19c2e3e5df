package configs

import "github.com/spf13/viper"

const (
	DefaultSMTPHost = "localhost"
	DefaultSMTPPort = 587
	DefaultSMTPFrom = "no-reply@excel-delivery.local"

	// 邮件投递熔断器默认配置.
	DefaultMailCBEnabled           = true
	DefaultMailCBFailureRate       = 0.5
	DefaultMailCBMinRequests       = 5
	DefaultMailCBIntervalSeconds   = 60
	DefaultMailCBTimeoutSeconds    = 30
	DefaultMailCBMaxRequestsInHalf = 2
)

// SMTPConfig 邮件投递配置.
type SMTPConfig struct {
	Host     string `mapstructure:"host"     rule:"hostname"`
	Port     int    `mapstructure:"port"     rule:"min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"     rule:"email"`
	UseTLS   bool   `mapstructure:"use_tls"`

	Breaker MailBreakerConfig `mapstructure:"breaker"`
}

// MailBreakerConfig 邮件发送的熔断器配置.
type MailBreakerConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	FailureRate       float64 `mapstructure:"failure_rate"`         // 窗口失败比例阈值 [0,1]
	MinRequests       uint32  `mapstructure:"min_requests"`         // 进入统计的最小请求数
	IntervalSeconds   int     `mapstructure:"interval_seconds"`     // 滑动窗口统计周期
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`      // 打开状态持续时间（自动半开）
	MaxRequestsInHalf uint32  `mapstructure:"max_requests_in_half"` // 半开状态允许的并发请求数
}

func (c *SMTPConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("smtp.host", DefaultSMTPHost)
	v.SetDefault("smtp.port", DefaultSMTPPort)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", DefaultSMTPFrom)
	v.SetDefault("smtp.use_tls", true)

	v.SetDefault("smtp.breaker.enabled", DefaultMailCBEnabled)
	v.SetDefault("smtp.breaker.failure_rate", DefaultMailCBFailureRate)
	v.SetDefault("smtp.breaker.min_requests", DefaultMailCBMinRequests)
	v.SetDefault("smtp.breaker.interval_seconds", DefaultMailCBIntervalSeconds)
	v.SetDefault("smtp.breaker.timeout_seconds", DefaultMailCBTimeoutSeconds)
	v.SetDefault("smtp.breaker.max_requests_in_half", DefaultMailCBMaxRequestsInHalf)
}
