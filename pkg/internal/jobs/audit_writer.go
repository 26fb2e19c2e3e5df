package jobs

import (
	"context"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	"github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

// StartAuditWriter 启动审计落库消费者：订阅 ed.audit.record 并逐条写入审计表.
// 业务请求路径上只发布消息，落库完全异步；写库失败 Nack 由消息队列重投.
func StartAuditWriter(ctx context.Context, mgr *storage.Manager) error {
	ch, err := mgr.MQ.Subscribe(ctx, queue.TopicAuditRecord)
	if err != nil {
		return err
	}

	baseCtx := ctxPkg.WithStorageManager(ctx, mgr)

	go func() {
		l := log.Logger().With().Str("consumer", "audit_writer").Logger()

		for msg := range ch {
			env, err := queue.ParseAuditRecord(msg)
			if err != nil {
				// 负载损坏的消息重投也无意义，确认后丢弃
				l.Error().Err(err).Str("message_id", msg.UUID).Msg("drop malformed audit message")
				msg.Ack()

				continue
			}

			entry := model.AuditLog{
				Action:    model.AuditAction(env.Payload.Action),
				ActorID:   env.Payload.ActorID,
				Target:    env.Payload.Target,
				TargetID:  env.Payload.TargetID,
				MetaJSON:  env.Payload.Meta,
				CreatedAt: env.Header.OccurredAt,
			}

			dbClient := ctxPkg.GetDBClient(baseCtx)
			if err := dbClient.WithContext(baseCtx).Create(&entry).Error; err != nil {
				l.Error().Err(err).Str("action", env.Payload.Action).Msg("persist audit entry failed")
				msg.Nack()

				continue
			}

			msg.Ack()
		}

		l.Info().Msg("audit writer stopped")
	}()

	return nil
}
