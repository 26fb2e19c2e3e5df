package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// TestAPIKeyLifecycle 签发、认证、吊销的完整流程.
// 吊销后再次认证必须失败，即使认证结果曾被缓存.
func TestAPIKeyLifecycle(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "apikey-admin@example.com", model.RoleAdmin, model.StatusActive)
	svc := service.NewAPIKeyService(ctx)

	created, err := svc.Create(ctx, adminPrincipal(admin), &types.CreateAPIKeyRequest{Label: "uploader"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !strings.HasPrefix(created.Key, "edk_") {
		t.Fatalf("expected edk_ prefix, got %q", created.Key)
	}

	key, err := svc.Authenticate(ctx, created.Key)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if key.ID != created.ID || key.LastUsedAt == nil {
		t.Fatalf("unexpected authenticated key: %+v", key)
	}

	// 再认证一次，命中缓存路径
	if _, err := svc.Authenticate(ctx, created.Key); err != nil {
		t.Fatalf("cached authenticate: %v", err)
	}

	if err := svc.Revoke(ctx, adminPrincipal(admin), created.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if _, err := svc.Authenticate(ctx, created.Key); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("revoked key must fail authentication, got %v", err)
	}
}

// TestAPIKeyAuthenticateUnknown 未知明文认证失败.
func TestAPIKeyAuthenticateUnknown(t *testing.T) {
	ctx := newTestCtx(t)

	if _, err := service.NewAPIKeyService(ctx).Authenticate(ctx, "edk_deadbeef"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestAPIKeyList 列表不暴露明文或散列，吊销的密钥保留记录.
func TestAPIKeyList(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "apikey-list@example.com", model.RoleAdmin, model.StatusActive)
	svc := service.NewAPIKeyService(ctx)

	first, err := svc.Create(ctx, adminPrincipal(admin), &types.CreateAPIKeyRequest{Label: "first"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	if _, err := svc.Create(ctx, adminPrincipal(admin), &types.CreateAPIKeyRequest{Label: "second"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := svc.Revoke(ctx, adminPrincipal(admin), first.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	resp, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(resp.Keys))
	}

	for _, k := range resp.Keys {
		if k.ID == first.ID && k.IsActive {
			t.Fatalf("revoked key must stay inactive: %+v", k)
		}
	}
}

// TestAPIKeyRevokeMissing 吊销不存在的密钥报 ErrNotFound.
func TestAPIKeyRevokeMissing(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "apikey-missing@example.com", model.RoleAdmin, model.StatusActive)

	if err := service.NewAPIKeyService(ctx).Revoke(ctx, adminPrincipal(admin), 4242); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
