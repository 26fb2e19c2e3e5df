package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	// MQTypeChannel 进程内 Go channel 实现，默认；单实例部署足够.
	MQTypeChannel MQType = "channel"
	// MQTypeNATS NATS（支持 JetStream），多实例部署时使用.
	MQTypeNATS MQType = "nats"

	DefaultMQURL         = "localhost:4222"
	DefaultMaxReconnects = 5 // 默认最大重连次数
	DefaultReconnectWait = 5 // 默认重连等待时间（秒）
)

// MQConfig 消息队列配置.
type MQConfig struct {
	Type MQType       `mapstructure:"type" rule:"oneof=channel nats"`
	NATS MQNATSConfig `mapstructure:"nats"`
}

// MQNATSConfig NATS MQ 配置.
type MQNATSConfig struct {
	URL               string `mapstructure:"url"                rule:"hostname_port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	MaxReconnects     int    `mapstructure:"max_reconnects"     rule:"min=0,max=100"`
	ReconnectWait     int    `mapstructure:"reconnect_wait"     rule:"min=1,max=300"`
	JetStreamEnabled  bool   `mapstructure:"jetstream_enabled"`
	StreamName        string `mapstructure:"stream_name"`
	SubjectPrefix     string `mapstructure:"subject_prefix"`
	DurablePrefix     string `mapstructure:"durable_prefix"`
	ConsumerAckWait   int    `mapstructure:"consumer_ack_wait"  rule:"min=1,max=300"`
	ConsumerMaxDeliver int   `mapstructure:"consumer_max_deliver" rule:"min=1,max=10"`
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.type", MQTypeChannel)

	// NATS 默认值
	v.SetDefault("mq.nats.url", DefaultMQURL)
	v.SetDefault("mq.nats.user", "")
	v.SetDefault("mq.nats.password", "")
	v.SetDefault("mq.nats.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.nats.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.nats.jetstream_enabled", false)
	v.SetDefault("mq.nats.stream_name", "excel-delivery-stream")
	v.SetDefault("mq.nats.subject_prefix", "ed.")
	v.SetDefault("mq.nats.durable_prefix", "excel-delivery-durable")
	v.SetDefault("mq.nats.consumer_ack_wait", 30)
	v.SetDefault("mq.nats.consumer_max_deliver", 3)
}
