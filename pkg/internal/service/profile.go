package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

type ProfileService struct {
	dbClient *db.Client
}

func NewProfileService(c context.Context) *ProfileService {
	return &ProfileService{dbClient: ctxPkg.GetDBClient(c)}
}

// Get 读取业务资料，尚未填写时返回空资料而非 404.
func (ps *ProfileService) Get(ctx context.Context, userID uint) (*types.ProfileInfo, error) {
	var profile model.UserProfile

	err := ps.dbClient.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.ProfileInfo{}, nil
		}

		return nil, err
	}

	return &types.ProfileInfo{
		BusinessName: profile.BusinessName,
		Equipment:    profile.EquipmentJSON,
		Closures:     profile.ClosuresJSON,
	}, nil
}

// Update 更新资料，首次更新时建行；nil 字段不变.
func (ps *ProfileService) Update(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*types.ProfileInfo, error) {
	var profile model.UserProfile

	err := ps.dbClient.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		profile = model.UserProfile{UserID: userID}
	}

	if req.BusinessName != nil {
		profile.BusinessName = *req.BusinessName
	}

	if req.Equipment != nil {
		profile.EquipmentJSON = *req.Equipment
	}

	if req.Closures != nil {
		profile.ClosuresJSON = *req.Closures
	}

	if err := ps.dbClient.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &types.ProfileInfo{
		BusinessName: profile.BusinessName,
		Equipment:    profile.EquipmentJSON,
		Closures:     profile.ClosuresJSON,
	}, nil
}
