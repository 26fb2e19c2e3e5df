package service_test

import (
	"errors"
	"fmt"
	"testing"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// TestUserCreateDefaults 管理员建号默认 USER/ACTIVE，邮箱唯一.
func TestUserCreateDefaults(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "users-admin@example.com", model.RoleAdmin, model.StatusActive)
	svc := service.NewUserService(ctx)

	info, err := svc.Create(ctx, adminPrincipal(admin), &types.CreateUserRequest{
		Email:    "users-new@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if info.Role != string(model.RoleUser) || info.Status != string(model.StatusActive) {
		t.Fatalf("expected USER/ACTIVE defaults, got %s/%s", info.Role, info.Status)
	}

	if _, err := svc.Create(ctx, adminPrincipal(admin), &types.CreateUserRequest{
		Email:    "users-new@example.com",
		Password: "password123",
	}); !errors.Is(err, service.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

// TestUserPatchPartial 未提供的字段保持不变.
func TestUserPatchPartial(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "patch-admin@example.com", model.RoleAdmin, model.StatusActive)
	target := mustCreateUser(t, ctx, "patch-target@example.com", model.RoleUser, model.StatusPending)
	svc := service.NewUserService(ctx)

	status := string(model.StatusActive)
	if _, err := svc.Patch(ctx, adminPrincipal(admin), target.ID, &types.UpdateUserRequest{
		Status: &status,
	}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	var got model.User
	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).First(&got, target.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}

	if got.Status != model.StatusActive {
		t.Fatalf("expected ACTIVE, got %s", got.Status)
	}

	if got.Role != model.RoleUser || got.Email != target.Email {
		t.Fatalf("untouched fields changed: role=%s email=%s", got.Role, got.Email)
	}

	if _, err := svc.Patch(ctx, adminPrincipal(admin), target.ID+9999, &types.UpdateUserRequest{}); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestUserDeleteCascade 删号清理分配、资料与重置令牌，文件保留但归属置空.
func TestUserDeleteCascade(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "cascade-admin@example.com", model.RoleAdmin, model.StatusActive)
	victim := mustCreateUser(t, ctx, "cascade-victim@example.com", model.RoleUser, model.StatusActive)

	uploaded := mustCreateFile(t, ctx, "01CASCADEUPLOADED000000001", &victim.ID, "application/pdf", "mine.pdf")
	assignedFile := mustCreateFile(t, ctx, "01CASCADEASSIGNED000000001", &admin.ID, "application/pdf", "given.pdf")

	dbClient := ctxPkg.GetDBClient(ctx)

	if _, _, err := service.NewAssignmentService(ctx).Assign(ctx, adminPrincipal(admin), &types.AssignFileRequest{
		FileID: assignedFile.ID,
		UserID: victim.ID,
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	name := "Victim LLC"
	if _, err := service.NewProfileService(ctx).Update(ctx, victim.ID, &types.UpdateProfileRequest{
		BusinessName: &name,
	}); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	if err := dbClient.WithContext(ctx).Create(&model.PasswordResetToken{
		UserID:    victim.ID,
		TokenHash: "cascade-token-hash",
	}).Error; err != nil {
		t.Fatalf("create reset token: %v", err)
	}

	if err := service.NewUserService(ctx).Delete(ctx, adminPrincipal(admin), victim.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	for _, check := range []struct {
		name  string
		model any
		where string
	}{
		{"assignments", &model.FileAssignment{}, "user_id = ?"},
		{"profiles", &model.UserProfile{}, "user_id = ?"},
		{"reset tokens", &model.PasswordResetToken{}, "user_id = ?"},
		{"users", &model.User{}, "id = ?"},
	} {
		var count int64
		if err := dbClient.WithContext(ctx).Model(check.model).
			Where(check.where, victim.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", check.name, err)
		}

		if count != 0 {
			t.Errorf("expected no %s rows after delete, got %d", check.name, count)
		}
	}

	var got model.File
	if err := dbClient.WithContext(ctx).First(&got, "id = ?", uploaded.ID).Error; err != nil {
		t.Fatalf("uploaded file must survive: %v", err)
	}

	if got.UploadedByID != nil {
		t.Fatalf("expected uploaded_by_id cleared, got %v", *got.UploadedByID)
	}
}

// TestUserList 分页列表按创建时间倒序.
func TestUserList(t *testing.T) {
	ctx := newTestCtx(t)
	for i := range 5 {
		mustCreateUser(t, ctx, fmt.Sprintf("list-%d@example.com", i), model.RoleUser, model.StatusActive)
	}

	svc := service.NewUserService(ctx)

	resp, err := svc.List(ctx, &types.ListUsersRequest{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}

	if resp.Total != 5 || len(resp.Users) != 3 {
		t.Fatalf("expected total 5 / page 3, got %d / %d", resp.Total, len(resp.Users))
	}

	// 最新建立的账号排在最前
	if resp.Users[0].Email != "list-4@example.com" {
		t.Fatalf("expected newest first, got %s", resp.Users[0].Email)
	}

	rest, err := svc.List(ctx, &types.ListUsersRequest{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}

	if len(rest.Users) != 2 {
		t.Fatalf("expected 2 on page 2, got %d", len(rest.Users))
	}
}
