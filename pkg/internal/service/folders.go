package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

const maxFolderNameLen = 60

type FolderService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewFolderService(c context.Context) *FolderService {
	return &FolderService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

func toFolderInfo(f *model.PdfFolder) types.FolderInfo {
	return types.FolderInfo{
		ID:        f.ID,
		Name:      f.Name,
		OwnerID:   f.OwnerID,
		CreatedAt: f.CreatedAt,
	}
}

// Create 创建文件夹. (owner, name) 唯一性交给数据库唯一索引，不做预检查，
// 并发重名只有一个成功. 管理员可通过 OwnerID 代任意用户建立.
func (fs *FolderService) Create(ctx context.Context, actor Principal, req *types.CreateFolderRequest) (*types.FolderInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > maxFolderNameLen {
		return nil, ErrInvalidFolderName
	}

	owner := actor.UserID
	if req.OwnerID != nil && *req.OwnerID != actor.UserID {
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}

		owner = *req.OwnerID
	}

	folder := model.PdfFolder{Name: name, OwnerID: owner}
	if err := fs.dbClient.WithContext(ctx).Create(&folder).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFolderExists
		}

		return nil, err
	}

	recordAudit(ctx, fs.mqClient, model.AuditFolderCreated, actor.actorID(), "pdf_folder", fmt.Sprintf("%d", folder.ID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicFolderCreated, queue.FolderPayload{
		FolderID: folder.ID,
		Name:     folder.Name,
		OwnerID:  folder.OwnerID,
	}); err == nil {
		_ = fs.mqClient.Publish(ctx, queue.TopicFolderCreated, msg)
	}

	info := toFolderInfo(&folder)

	return &info, nil
}

// ownedFolder 取调用方可写的文件夹. 非所有者与不存在同样返回 ErrNotFound，
// 管理员越过所有权检查.
func (fs *FolderService) ownedFolder(ctx context.Context, actor Principal, folderID uint) (*model.PdfFolder, error) {
	var folder model.PdfFolder
	if err := fs.dbClient.WithContext(ctx).First(&folder, folderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	if folder.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrNotFound
	}

	return &folder, nil
}

// Rename 重命名文件夹，唯一性失败模式与创建一致.
func (fs *FolderService) Rename(ctx context.Context, actor Principal, folderID uint, req *types.RenameFolderRequest) (*types.FolderInfo, error) {
	folder, err := fs.ownedFolder(ctx, actor, folderID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > maxFolderNameLen {
		return nil, ErrInvalidFolderName
	}

	if err := fs.dbClient.WithContext(ctx).Model(folder).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFolderExists
		}

		return nil, err
	}

	folder.Name = name
	info := toFolderInfo(folder)

	return &info, nil
}

// Delete 删除文件夹. 同一事务内先将成员文件的 pdf_folder_id 置空再删文件夹行，
// 文件永远不随文件夹删除.
func (fs *FolderService) Delete(ctx context.Context, actor Principal, folderID uint) error {
	folder, err := fs.ownedFolder(ctx, actor, folderID)
	if err != nil {
		return err
	}

	err = fs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.File{}).
			Where("pdf_folder_id = ?", folder.ID).
			Update("pdf_folder_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.PdfFolder{}, folder.ID).Error
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, fs.mqClient, model.AuditFolderDeleted, actor.actorID(), "pdf_folder", fmt.Sprintf("%d", folder.ID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicFolderDeleted, queue.FolderPayload{
		FolderID: folder.ID,
		Name:     folder.Name,
		OwnerID:  folder.OwnerID,
	}); err == nil {
		_ = fs.mqClient.Publish(ctx, queue.TopicFolderDeleted, msg)
	}

	return nil
}

// List 列出调用方自己的文件夹，按名称排序.
func (fs *FolderService) List(ctx context.Context, actor Principal) (*types.ListFoldersResponse, error) {
	var rows []model.PdfFolder
	if err := fs.dbClient.WithContext(ctx).
		Where("owner_id = ?", actor.UserID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	folders := make([]types.FolderInfo, 0, len(rows))
	for i := range rows {
		folders = append(folders, toFolderInfo(&rows[i]))
	}

	return &types.ListFoldersResponse{Folders: folders}, nil
}
