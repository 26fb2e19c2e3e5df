package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultJWTSecret        = "change-me"  // 默认 JWT 密钥，生产环境必须覆盖
	DefaultSessionTTL       = 12 * 60      // 会话有效期（分钟）
	DefaultResetTokenTTL    = 30           // 密码重置 token 有效期（分钟）
	DefaultBcryptCost       = 10           // bcrypt 哈希成本
	DefaultAPIKeyHeader     = "X-API-Key"  // 集成方 API Key 请求头
	DefaultResetURLBase     = ""           // 重置邮件里的链接前缀，空则只发 token
	DefaultThrottlePerEmail = 3            // 忘记密码接口单邮箱节流次数
	DefaultThrottleWindow   = 15           // 节流窗口（分钟）
)

// AuthConfig 会话、密码与 API Key 相关配置.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"`
	SessionTTLMinutes    int    `mapstructure:"session_ttl_minutes"     rule:"min=1"`
	ResetTokenTTLMinutes int    `mapstructure:"reset_token_ttl_minutes" rule:"min=1,max=1440"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"             rule:"min=4,max=31"`
	APIKeyHeader         string `mapstructure:"api_key_header"`
	ResetURLBase         string `mapstructure:"reset_url_base"`
	// 忘记密码接口的节流参数（针对单个邮箱）
	ThrottlePerEmail      int `mapstructure:"throttle_per_email"      rule:"min=1"`
	ThrottleWindowMinutes int `mapstructure:"throttle_window_minutes" rule:"min=1"`
}

// GetSessionTTL 返回会话有效期.
func (c *AuthConfig) GetSessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// GetResetTokenTTL 返回密码重置 token 有效期.
func (c *AuthConfig) GetResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenTTLMinutes) * time.Minute
}

// GetThrottleWindow 返回节流窗口.
func (c *AuthConfig) GetThrottleWindow() time.Duration {
	return time.Duration(c.ThrottleWindowMinutes) * time.Minute
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.session_ttl_minutes", DefaultSessionTTL)
	v.SetDefault("auth.reset_token_ttl_minutes", DefaultResetTokenTTL)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("auth.api_key_header", DefaultAPIKeyHeader)
	v.SetDefault("auth.reset_url_base", DefaultResetURLBase)
	v.SetDefault("auth.throttle_per_email", DefaultThrottlePerEmail)
	v.SetDefault("auth.throttle_window_minutes", DefaultThrottleWindow)
}
