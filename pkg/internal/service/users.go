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

const defaultUserPageSize = 50

type UserService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewUserService(c context.Context) *UserService {
	return &UserService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

func toUserInfo(u *model.User) types.UserInfo {
	return types.UserInfo{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		Status:             string(u.Status),
		SubscriptionActive: u.SubscriptionActive,
		CreatedAt:          u.CreatedAt,
	}
}

// Create 管理员建立账号. 角色默认 USER，状态由调用方指定，默认 ACTIVE.
func (us *UserService) Create(ctx context.Context, actor Principal, req *types.CreateUserRequest) (*types.UserInfo, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := model.RoleUser
	if req.Role != "" {
		role = model.Role(req.Role)
	}

	status := model.StatusActive
	if req.Status != "" {
		status = model.Status(req.Status)
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         role,
		Status:       status,
	}

	if err := us.dbClient.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}

		return nil, err
	}

	recordAudit(ctx, us.mqClient, model.AuditUserCreated, actor.actorID(), "user", fmt.Sprintf("%d", user.ID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicUserCreated, queue.UserPayload{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
		Status:  string(user.Status),
		ActorID: actor.UserID,
	}); err == nil {
		_ = us.mqClient.Publish(ctx, queue.TopicUserCreated, msg)
	}

	info := toUserInfo(&user)

	return &info, nil
}

// List 账号分页列表，按创建时间倒序.
func (us *UserService) List(ctx context.Context, req *types.ListUsersRequest) (*types.ListUsersResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultUserPageSize
	}

	q := us.dbClient.WithContext(ctx).Model(&model.User{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.User
	if err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]types.UserInfo, 0, len(rows))
	for i := range rows {
		users = append(users, toUserInfo(&rows[i]))
	}

	return &types.ListUsersResponse{Users: users, Total: total}, nil
}

// Patch 部分更新 {name, role, status, subscriptionActive}，未提供的字段不变.
func (us *UserService) Patch(ctx context.Context, actor Principal, userID uint, req *types.UpdateUserRequest) (*types.UserInfo, error) {
	var user model.User
	if err := us.dbClient.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	subscriptionToggled := req.SubscriptionActive != nil && *req.SubscriptionActive != user.SubscriptionActive
	if req.SubscriptionActive != nil {
		updates["subscription_active"] = *req.SubscriptionActive
	}

	if len(updates) > 0 {
		if err := us.dbClient.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if subscriptionToggled {
		recordAudit(ctx, us.mqClient, model.AuditSubscriptionToggled, actor.actorID(), "user",
			fmt.Sprintf("%d", user.ID), fmt.Sprintf(`{"active":%t}`, user.SubscriptionActive))

		if msg, err := queue.NewWatermillMessage(queue.TopicUserSubscriptionToggle, queue.SubscriptionTogglePayload{
			UserID:  user.ID,
			Active:  user.SubscriptionActive,
			ActorID: actor.UserID,
		}); err == nil {
			_ = us.mqClient.Publish(ctx, queue.TopicUserSubscriptionToggle, msg)
		}
	} else if len(updates) > 0 {
		recordAudit(ctx, us.mqClient, model.AuditUserUpdated, actor.actorID(), "user", fmt.Sprintf("%d", user.ID), "")
	}

	info := toUserInfo(&user)

	return &info, nil
}

// Delete 删除账号，级联清理在单个事务内按序执行：
// 分配关系（作为受派人或指派人）→ 置空其上传文件的归属 → 资料 → 重置令牌 → 账号行.
// 文件本身保留.
func (us *UserService) Delete(ctx context.Context, actor Principal, userID uint) error {
	var user model.User
	if err := us.dbClient.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	err := us.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR assigned_by_id = ?", userID, userID).
			Delete(&model.FileAssignment{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.File{}).
			Where("uploaded_by_id = ?", userID).
			Update("uploaded_by_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.UserProfile{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, userID).Error
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, us.mqClient, model.AuditUserDeleted, actor.actorID(), "user", fmt.Sprintf("%d", userID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicUserDeleted, queue.UserPayload{
		UserID:  userID,
		Email:   user.Email,
		ActorID: actor.UserID,
	}); err == nil {
		_ = us.mqClient.Publish(ctx, queue.TopicUserDeleted, msg)
	}

	return nil
}
