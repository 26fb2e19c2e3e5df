package service

import (
	"context"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

const defaultAuditPageSize = 50

type AuditService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewAuditService(c context.Context) *AuditService {
	return &AuditService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// recordAudit 发布审计事件，由后台消费者落库.
// 主操作成功后调用；发布失败只记日志，永不向调用方传播.
func recordAudit(ctx context.Context, mqClient *mq.Client, action model.AuditAction, actorID *uint, target, targetID, meta string) {
	payload := queue.AuditRecordPayload{
		Action:   string(action),
		ActorID:  actorID,
		Target:   target,
		TargetID: targetID,
		Meta:     meta,
	}

	msg, err := queue.NewWatermillMessage(queue.TopicAuditRecord, payload)
	if err != nil {
		nlog.Logger().Error().Err(err).Str("action", string(action)).Msg("encode audit event failed")
		return
	}

	if err := mqClient.Publish(ctx, queue.TopicAuditRecord, msg); err != nil {
		nlog.Logger().Error().Err(err).Str("action", string(action)).Msg("publish audit event failed")
	}
}

// List 审计记录查询，按时间倒序分页，可按动作过滤.
func (as *AuditService) List(ctx context.Context, req *types.ListAuditRequest) (*types.ListAuditResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultAuditPageSize
	}

	q := as.dbClient.WithContext(ctx).Model(&model.AuditLog{})
	if req.Action != "" {
		q = q.Where("action = ?", req.Action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.AuditLog
	if err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]types.AuditEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, types.AuditEntry{
			ID:        r.ID,
			Action:    string(r.Action),
			ActorID:   r.ActorID,
			Target:    r.Target,
			TargetID:  r.TargetID,
			Meta:      r.MetaJSON,
			CreatedAt: r.CreatedAt,
		})
	}

	return &types.ListAuditResponse{Entries: entries, Total: total}, nil
}
