package service_test

import (
	"testing"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// TestProfileGetEmpty 未填写过资料时返回空资料而非 404.
func TestProfileGetEmpty(t *testing.T) {
	ctx := newTestCtx(t)
	user := mustCreateUser(t, ctx, "profile-empty@example.com", model.RoleUser, model.StatusActive)

	profile, err := service.NewProfileService(ctx).Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if profile.BusinessName != "" || profile.Equipment != "" || profile.Closures != "" {
		t.Fatalf("expected empty profile, got %+v", profile)
	}
}

// TestProfileUpdate 首次更新建行，nil 字段保持不变.
func TestProfileUpdate(t *testing.T) {
	ctx := newTestCtx(t)
	user := mustCreateUser(t, ctx, "profile-update@example.com", model.RoleUser, model.StatusActive)
	svc := service.NewProfileService(ctx)

	name := "Acme Catering"
	equipment := `{"oven":true}`

	updated, err := svc.Update(ctx, user.ID, &types.UpdateProfileRequest{
		BusinessName: &name,
		Equipment:    &equipment,
	})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}

	if updated.BusinessName != name || updated.Equipment != equipment {
		t.Fatalf("unexpected profile after update: %+v", updated)
	}

	// 只改 closures，其余保留
	closures := `[{"from":"2026-12-24","to":"2026-12-31"}]`

	updated, err = svc.Update(ctx, user.ID, &types.UpdateProfileRequest{Closures: &closures})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if updated.BusinessName != name || updated.Equipment != equipment || updated.Closures != closures {
		t.Fatalf("partial update broke untouched fields: %+v", updated)
	}

	got, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.BusinessName != name || got.Closures != closures {
		t.Fatalf("persisted profile mismatch: %+v", got)
	}
}
