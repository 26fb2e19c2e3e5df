// Package mq 提供进程内 Go channel 消息队列实现。
// 单实例部署的默认选择，无外部依赖，进程退出后消息不保留。
package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
)

const defaultChannelBuffer = 256

// init 注册 channel 工厂.
func init() {
	RegisterFactory(configs.MQTypeChannel, channelFactory)
}

// channelFactory 创建进程内 Publisher & Subscriber，二者共享同一 pubsub.
func channelFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: defaultChannelBuffer,
	}, logger)

	return ps, ps, nil
}
