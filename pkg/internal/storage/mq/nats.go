//go:build !no_nats

// Package mq 提供 NATS 消息队列操作实现。
// 此文件包含 NATS 特定的工厂函数，用于创建配置了可选 JetStream 支持的 Publisher 和 Subscriber 实例。
// 多实例部署时使用，配置从 configs.MQNATSConfig 读取。
package mq

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
)

const defaultDrainTimeout = 30 * time.Second

// init 注册 NATS 工厂.
func init() {
	RegisterFactory(configs.MQTypeNATS, natsFactory)
}

// buildNatsOptions 构建 NATS 连接选项.
func buildNatsOptions(cfg *configs.MQNATSConfig) []nc.Option {
	opts := []nc.Option{
		nc.Name(configs.AppName),
		nc.MaxReconnects(cfg.MaxReconnects),
		nc.ReconnectWait(time.Duration(cfg.ReconnectWait) * time.Second),
		nc.DrainTimeout(defaultDrainTimeout),
		nc.RetryOnFailedConnect(true),
	}

	if cfg.User != "" {
		opts = append(opts, nc.UserInfo(cfg.User, cfg.Password))
	}

	return opts
}

// buildJetStreamConfig 构建 JetStream 配置.
func buildJetStreamConfig(cfg *configs.MQNATSConfig, logger watermill.LoggerAdapter) nats.JetStreamConfig {
	jsCfg := nats.JetStreamConfig{
		Disabled: !cfg.JetStreamEnabled,
	}

	if cfg.JetStreamEnabled {
		jsCfg.AutoProvision = true
		jsCfg.TrackMsgId = true
		jsCfg.DurablePrefix = cfg.DurablePrefix

		logger.Info("JetStream 配置信息", watermill.LogFields{
			"durable_prefix": cfg.DurablePrefix,
			"stream_name":    cfg.StreamName,
			"subject_prefix": cfg.SubjectPrefix,
		})
	}

	return jsCfg
}

// natsFactory 创建 NATS Publisher & Subscriber.
func natsFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	natsCfg := &cfg.NATS
	opts := buildNatsOptions(natsCfg)
	jsCfg := buildJetStreamConfig(natsCfg, logger)
	marshaler := &nats.JSONMarshaler{}

	pub, err := nats.NewPublisher(nats.PublisherConfig{
		NatsOptions: opts,
		JetStream:   jsCfg,
		Marshaler:   marshaler,
		URL:         natsCfg.URL,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	sub, err := nats.NewSubscriber(nats.SubscriberConfig{
		NatsOptions: opts,
		JetStream:   jsCfg,
		Unmarshaler: marshaler,
		URL:         natsCfg.URL,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return pub, sub, nil
}
