package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// sha256Hex 与令牌落库使用相同的散列格式.
func sha256Hex(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// registerActive 注册并激活一个账号，返回账号行.
func registerActive(t *testing.T, ctx context.Context, email, password string) *model.User {
	t.Helper()

	svc := service.NewAuthService(ctx)

	info, err := svc.Register(ctx, &types.RegisterRequest{Email: email, Password: password})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}

	dbClient := ctxPkg.GetDBClient(ctx)
	if err := dbClient.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", info.ID).
		Update("status", model.StatusActive).Error; err != nil {
		t.Fatalf("activate %s: %v", email, err)
	}

	var user model.User
	if err := dbClient.WithContext(ctx).First(&user, info.ID).Error; err != nil {
		t.Fatalf("reload %s: %v", email, err)
	}

	return &user
}

// TestRegister 注册产生 PENDING 账号，邮箱唯一.
func TestRegister(t *testing.T) {
	ctx := newTestCtx(t)
	svc := service.NewAuthService(ctx)

	info, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "register@example.com",
		Password: "password123",
		Name:     "Reg",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if info.Status != string(model.StatusPending) || info.Role != string(model.RoleUser) {
		t.Fatalf("expected PENDING/USER, got %s/%s", info.Status, info.Role)
	}

	if _, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "register@example.com",
		Password: "password123",
	}); !errors.Is(err, service.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

// TestLogin 口令校验、停用拒绝与会话令牌往返.
func TestLogin(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "login@example.com", "password123")
	svc := service.NewAuthService(ctx)

	resp, err := svc.Login(ctx, &types.LoginRequest{Email: user.Email, Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.Token == "" || resp.User.ID != user.ID {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	principal, err := service.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if principal.UserID != user.ID || principal.Role != model.RoleUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Email: user.Email, Password: "wrong"}); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Email: "ghost@example.com", Password: "password123"}); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("status", model.StatusSuspended).Error; err != nil {
		t.Fatalf("suspend: %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Email: user.Email, Password: "password123"}); !errors.Is(err, service.ErrAccountSuspended) {
		t.Fatalf("suspended: expected ErrAccountSuspended, got %v", err)
	}
}

// TestLoginPendingAllowed PENDING 账号可以登录，只有 SUSPENDED 被拒.
func TestLoginPendingAllowed(t *testing.T) {
	ctx := newTestCtx(t)
	svc := service.NewAuthService(ctx)

	if _, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "pending-login@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "pending-login@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("pending login: %v", err)
	}

	if resp.Token == "" || resp.User.Status != string(model.StatusPending) {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

// TestParseTokenRejectsGarbage 非法令牌一律 ErrInvalidCredentials.
func TestParseTokenRejectsGarbage(t *testing.T) {
	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := service.ParseToken(token); !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("token %q: expected ErrInvalidCredentials, got %v", token, err)
		}
	}
}

// TestChangePassword 自助改密需要正确的旧口令.
func TestChangePassword(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "change@example.com", "oldpassword1")
	svc := service.NewAuthService(ctx)

	if err := svc.ChangePassword(ctx, user.ID, &types.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword1",
	}); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("wrong old password: expected ErrInvalidCredentials, got %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, &types.ChangePasswordRequest{
		OldPassword: "oldpassword1",
		NewPassword: "newpassword1",
	}); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Email: user.Email, Password: "newpassword1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

// TestForgotPassword 为既有邮箱建立单个未使用令牌；未知邮箱静默成功.
func TestForgotPassword(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "forgot@example.com", "password123")
	svc := service.NewAuthService(ctx)
	dbClient := ctxPkg.GetDBClient(ctx)

	svc.ForgotPassword(ctx, user.Email)

	var count int64
	if err := dbClient.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}

	if count != 1 {
		t.Fatalf("expected 1 token, got %d", count)
	}

	// 再次申请：旧的未使用令牌被替换，数量仍为 1
	svc.ForgotPassword(ctx, user.Email)

	if err := dbClient.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}

	if count != 1 {
		t.Fatalf("expected token replaced, got %d rows", count)
	}

	// 未知邮箱不产生令牌，也不报错
	svc.ForgotPassword(ctx, "nobody@example.com")

	if err := dbClient.WithContext(ctx).Model(&model.PasswordResetToken{}).Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}

	if count != 1 {
		t.Fatalf("unknown email must not create tokens, got %d rows", count)
	}
}

// TestForgotPasswordThrottle 单邮箱超过窗口配额后不再签发新令牌.
func TestForgotPasswordThrottle(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "throttle@example.com", "password123")
	svc := service.NewAuthService(ctx)
	dbClient := ctxPkg.GetDBClient(ctx)

	// 默认窗口配额为 3 次
	for range 3 {
		svc.ForgotPassword(ctx, user.Email)
	}

	if err := dbClient.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Delete(&model.PasswordResetToken{}).Error; err != nil {
		t.Fatalf("clear tokens: %v", err)
	}

	svc.ForgotPassword(ctx, user.Email)

	var count int64
	if err := dbClient.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}

	if count != 0 {
		t.Fatalf("throttled request must not create a token, got %d rows", count)
	}
}

// TestResetPassword 令牌消费：一次性使用，过期与无效分别报错.
func TestResetPassword(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "reset@example.com", "password123")
	svc := service.NewAuthService(ctx)
	dbClient := ctxPkg.GetDBClient(ctx)

	const plain = "known-reset-token"

	if err := dbClient.WithContext(ctx).Create(&model.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: sha256Hex(plain),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}).Error; err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if err := svc.ResetPassword(ctx, &types.ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "replacement1",
	}); !errors.Is(err, service.ErrInvalidToken) {
		t.Fatalf("bogus token: expected ErrInvalidToken, got %v", err)
	}

	if err := svc.ResetPassword(ctx, &types.ResetPasswordRequest{
		Token:       plain,
		NewPassword: "replacement1",
	}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var reloaded model.User
	if err := dbClient.WithContext(ctx).First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("replacement1")); err != nil {
		t.Fatalf("password not updated: %v", err)
	}

	// 令牌一次性使用
	if err := svc.ResetPassword(ctx, &types.ResetPasswordRequest{
		Token:       plain,
		NewPassword: "replacement2",
	}); !errors.Is(err, service.ErrInvalidToken) {
		t.Fatalf("reused token: expected ErrInvalidToken, got %v", err)
	}
}

// TestResetPasswordExpired 过期令牌单独报 expired_token.
func TestResetPasswordExpired(t *testing.T) {
	ctx := newTestCtx(t)
	user := registerActive(t, ctx, "reset-expired@example.com", "password123")
	dbClient := ctxPkg.GetDBClient(ctx)

	const plain = "expired-reset-token"

	if err := dbClient.WithContext(ctx).Create(&model.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: sha256Hex(plain),
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error; err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if err := service.NewAuthService(ctx).ResetPassword(ctx, &types.ResetPasswordRequest{
		Token:       plain,
		NewPassword: "replacement1",
	}); !errors.Is(err, service.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}
