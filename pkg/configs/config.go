// Package configs 管理应用程序配置，包括数据库、对象存储、消息队列、认证与邮件的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppName 应用名称，用于对象存储 UA、事件 producer 标识等.
const AppName = "excel-delivery"

// AppVersion 应用版本.
const AppVersion = "1.0.0"

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		Server    ServerConfig    `mapstructure:"server"`     // 服务器端口、调试开关等
		DB        DBConfig        `mapstructure:"db"`         // 关系数据库配置
		S3        S3Config        `mapstructure:"s3"`         // 对象存储配置
		KV        KVConfig        `mapstructure:"kv"`         // 键值存储配置（认证接口节流）
		MQ        MQConfig        `mapstructure:"mq"`         // 消息队列配置（审计与领域事件）
		Log       LogConfig       `mapstructure:"log"`        // 日志相关配置
		Auth      AuthConfig      `mapstructure:"auth"`       // 会话与 API Key 配置
		SMTP      SMTPConfig      `mapstructure:"smtp"`       // 邮件投递配置
		RateLimit RateLimitConfig `mapstructure:"rate_limit"` // 请求限流配置
		Metrics   MetricsConfig   `mapstructure:"metrics"`    // 监控指标配置
		Tracing   TracingConfig   `mapstructure:"tracing"`    // 分布式追踪配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("EXCELDELIVERY")

	// 读取配置；缺少配置文件时退回默认值 + 环境变量
	if err := appViper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var cfg AppConfig

	cfg.Server.setDefaults(v)
	cfg.DB.setDefaults(v)
	cfg.S3.setDefaults(v)
	cfg.KV.setDefaults(v)
	cfg.MQ.setDefaults(v)
	cfg.Log.setDefaults(v)
	cfg.Auth.setDefaults(v)
	cfg.SMTP.setDefaults(v)
	cfg.RateLimit.setDefaults(v)
	cfg.Metrics.setDefaults(v)
	cfg.Tracing.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
