package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

type AssignmentService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewAssignmentService(c context.Context) *AssignmentService {
	return &AssignmentService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// Assign 将文件分配给用户，幂等：已有 (file, user) 记录时返回其 id，不重复建行.
// 返回值 created 区分新建（201）与命中既有（200）.
func (as *AssignmentService) Assign(ctx context.Context, actor Principal, req *types.AssignFileRequest) (*types.AssignFileResponse, bool, error) {
	// 两端实体必须存在
	var fileCount int64
	if err := as.dbClient.WithContext(ctx).Model(&model.File{}).
		Where("id = ?", req.FileID).Count(&fileCount).Error; err != nil {
		return nil, false, err
	}

	var userCount int64
	if err := as.dbClient.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", req.UserID).Count(&userCount).Error; err != nil {
		return nil, false, err
	}

	if fileCount == 0 || userCount == 0 {
		return nil, false, ErrNotFound
	}

	var existing model.FileAssignment

	err := as.dbClient.WithContext(ctx).
		Where("file_id = ? AND user_id = ?", req.FileID, req.UserID).
		First(&existing).Error
	if err == nil {
		return &types.AssignFileResponse{OK: true, ID: existing.ID, Existing: true}, false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	assignment := model.FileAssignment{
		FileID:       req.FileID,
		UserID:       req.UserID,
		AssignedByID: actor.UserID,
	}

	if err := as.dbClient.WithContext(ctx).Create(&assignment).Error; err != nil {
		// 并发重复分配时输给唯一索引，改查胜者记录保持幂等语义
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if e := as.dbClient.WithContext(ctx).
				Where("file_id = ? AND user_id = ?", req.FileID, req.UserID).
				First(&existing).Error; e == nil {
				return &types.AssignFileResponse{OK: true, ID: existing.ID, Existing: true}, false, nil
			}
		}

		return nil, false, err
	}

	recordAudit(ctx, as.mqClient, model.AuditFileAssigned, actor.actorID(), "file", req.FileID,
		fmt.Sprintf(`{"user_id":%d}`, req.UserID))

	if msg, err := queue.NewWatermillMessage(queue.TopicFileAssigned, queue.FileAssignedPayload{
		File:         queue.FileRef{FileID: req.FileID},
		UserIDs:      []uint{req.UserID},
		AssignedByID: actor.UserID,
	}); err == nil {
		_ = as.mqClient.Publish(ctx, queue.TopicFileAssigned, msg)
	}

	return &types.AssignFileResponse{OK: true, ID: assignment.ID}, true, nil
}
