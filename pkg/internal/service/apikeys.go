package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/igorzgk/excel-delivery-sub000/pkg/cache"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

const (
	apiKeyBytes  = 32
	apiKeyPrefix = "edk_"

	// apiKeyCacheTTL 认证结果的短缓存，避免每个集成请求都打数据库.
	apiKeyCacheTTL = time.Minute
)

type APIKeyService struct {
	dbClient *db.Client
	mqClient *mq.Client
	cache    *cache.Cache
}

func NewAPIKeyService(c context.Context) *APIKeyService {
	s := &APIKeyService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}

	if kvClient := ctxPkg.GetKVClient(c); kvClient != nil {
		s.cache = cache.NewCache(kvClient)
	}

	return s
}

// hashAPIKey 密钥只落库 SHA-256 哈希.
func hashAPIKey(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Create 签发接口密钥. 明文只在本次响应出现一次.
func (ks *APIKeyService) Create(ctx context.Context, actor Principal, req *types.CreateAPIKeyRequest) (*types.CreateAPIKeyResponse, error) {
	raw := make([]byte, apiKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate api key: %w", err)
	}

	plain := apiKeyPrefix + hex.EncodeToString(raw)

	key := model.APIKey{
		Label:    req.Label,
		KeyHash:  hashAPIKey(plain),
		IsActive: true,
	}

	if err := ks.dbClient.WithContext(ctx).Create(&key).Error; err != nil {
		return nil, err
	}

	recordAudit(ctx, ks.mqClient, model.AuditAPIKeyCreated, actor.actorID(), "api_key", fmt.Sprintf("%d", key.ID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicAPIKeyCreated, queue.APIKeyPayload{
		KeyID:   key.ID,
		Label:   key.Label,
		ActorID: actor.UserID,
	}); err == nil {
		_ = ks.mqClient.Publish(ctx, queue.TopicAPIKeyCreated, msg)
	}

	return &types.CreateAPIKeyResponse{ID: key.ID, Label: key.Label, Key: plain}, nil
}

// List 列出全部密钥（不含哈希）.
func (ks *APIKeyService) List(ctx context.Context) (*types.ListAPIKeysResponse, error) {
	var rows []model.APIKey
	if err := ks.dbClient.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	keys := make([]types.APIKeyInfo, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, types.APIKeyInfo{
			ID:         r.ID,
			Label:      r.Label,
			IsActive:   r.IsActive,
			CreatedAt:  r.CreatedAt,
			LastUsedAt: r.LastUsedAt,
		})
	}

	return &types.ListAPIKeysResponse{Keys: keys}, nil
}

// Revoke 吊销密钥（置 is_active=false），保留记录.
func (ks *APIKeyService) Revoke(ctx context.Context, actor Principal, keyID uint) error {
	var key model.APIKey
	if err := ks.dbClient.WithContext(ctx).First(&key, keyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	if err := ks.dbClient.WithContext(ctx).Model(&key).Update("is_active", false).Error; err != nil {
		return err
	}

	if ks.cache != nil {
		_ = ks.cache.Delete(ctx, apiKeyCacheKey(key.KeyHash))
	}

	recordAudit(ctx, ks.mqClient, model.AuditAPIKeyRevoked, actor.actorID(), "api_key", fmt.Sprintf("%d", keyID), "")

	if msg, err := queue.NewWatermillMessage(queue.TopicAPIKeyRevoked, queue.APIKeyPayload{
		KeyID:   key.ID,
		Label:   key.Label,
		ActorID: actor.UserID,
	}); err == nil {
		_ = ks.mqClient.Publish(ctx, queue.TopicAPIKeyRevoked, msg)
	}

	return nil
}

func apiKeyCacheKey(hash string) string {
	return "apikey:" + hash
}

// Authenticate 校验集成密钥明文. 认证结果短暂缓存，吊销时主动失效.
// 命中后尽力更新 last_used_at，失败不影响认证结果.
func (ks *APIKeyService) Authenticate(ctx context.Context, plain string) (*model.APIKey, error) {
	hash := hashAPIKey(plain)

	lookup := func() (model.APIKey, error) {
		var key model.APIKey

		err := ks.dbClient.WithContext(ctx).
			Where("key_hash = ? AND is_active = ?", hash, true).
			First(&key).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.APIKey{}, ErrInvalidCredentials
			}

			return model.APIKey{}, err
		}

		return key, nil
	}

	var (
		key model.APIKey
		err error
	)

	if ks.cache != nil {
		key, err = cache.GetOrSet(ctx, ks.cache, apiKeyCacheKey(hash), lookup, apiKeyCacheTTL)
	} else {
		key, err = lookup()
	}

	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := ks.dbClient.WithContext(ctx).Model(&key).Update("last_used_at", &now).Error; err != nil {
		nlog.Logger().Warn().Err(err).Uint("key_id", key.ID).Msg("update api key last_used_at failed")
	}

	return &key, nil
}
