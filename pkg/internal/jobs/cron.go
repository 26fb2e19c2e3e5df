// Package jobs 负责注册与实现业务定时任务（基于 scheduler）与消息消费者.
package jobs

import (
	"context"
	"fmt"
	"time"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	"github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:20 清理已过期或已使用的密码重置令牌
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务内访问存储
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(JobResetTokenPurge, CronResetTokenPurge, func(ctx context.Context) {
		runResetTokenPurge(ctx)
	}, baseCtx)

	return nil
}

// runResetTokenPurge 删除已过期或已使用的密码重置令牌.
// 过期与已用令牌在校验路径上本就无效，这里只是收缩表体积.
func runResetTokenPurge(ctx context.Context) {
	l := log.Logger().With().Str("job", JobResetTokenPurge).Logger()

	dbClient := ctxPkg.GetDBClient(ctx)
	if dbClient == nil {
		l.Error().Msg("db client not available")
		return
	}

	res := dbClient.WithContext(ctx).
		Where("expires_at < ? OR used_at IS NOT NULL", time.Now()).
		Delete(&model.PasswordResetToken{})
	if res.Error != nil {
		l.Error().Err(res.Error).Msg("purge reset tokens failed")
		return
	}

	if res.RowsAffected > 0 {
		l.Info().Int64("purged", res.RowsAffected).Msg("purged stale reset tokens")
	}
}
