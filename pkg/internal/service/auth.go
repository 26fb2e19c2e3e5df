package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/kv"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/mail"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

const resetTokenBytes = 32

type AuthService struct {
	dbClient *db.Client
	kvClient *kv.Client
	mqClient *mq.Client
}

func NewAuthService(c context.Context) *AuthService {
	return &AuthService{
		dbClient: ctxPkg.GetDBClient(c),
		kvClient: ctxPkg.GetKVClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// sessionClaims JWT 载荷.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken 为账号签发会话 JWT（HS256）.
func IssueToken(u *model.User) (string, error) {
	cfg := configs.GetConfig().Auth
	now := time.Now()

	claims := sessionClaims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.GetSessionTTL())),
			Issuer:    configs.AppName,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken 校验会话 JWT 并解析为 Principal.
func ParseToken(tokenString string) (Principal, error) {
	cfg := configs.GetConfig().Auth

	var claims sessionClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidCredentials
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return Principal{}, ErrInvalidCredentials
	}

	return Principal{UserID: userID, Role: model.Role(claims.Role)}, nil
}

// HashPassword bcrypt 哈希口令.
func HashPassword(plain string) (string, error) {
	cost := configs.GetConfig().Auth.BcryptCost

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

// Register 自助注册，账号初始状态 PENDING.
func (as *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserInfo, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         model.RoleUser,
		Status:       model.StatusPending,
	}

	if err := as.dbClient.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}

		return nil, err
	}

	recordAudit(ctx, as.mqClient, model.AuditUserCreated, &user.ID, "user", fmt.Sprintf("%d", user.ID), "")

	info := toUserInfo(&user)

	return &info, nil
}

// Login 校验口令并签发会话. SUSPENDED 账号拒绝登录.
func (as *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	var user model.User
	if err := as.dbClient.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == model.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	token, err := IssueToken(&user)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{Token: token, User: toUserInfo(&user)}, nil
}

// ChangePassword 自助改密，需提供旧口令.
func (as *AuthService) ChangePassword(ctx context.Context, userID uint, req *types.ChangePasswordRequest) error {
	var user model.User
	if err := as.dbClient.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return as.dbClient.WithContext(ctx).Model(&user).Update("password_hash", hashed).Error
}

// hashResetToken 重置令牌只落库 SHA-256 哈希.
func hashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// ForgotPassword 发起找回密码. 无论邮箱是否存在、是否被节流，
// 对调用方都表现为同一个成功响应；一切差异只出现在日志里.
func (as *AuthService) ForgotPassword(ctx context.Context, email string) {
	cfg := configs.GetConfig().Auth

	// 单邮箱节流，防止邮件轰炸
	if as.kvClient != nil {
		count, err := as.kvClient.Incr(ctx, "pwreset:"+email, cfg.GetThrottleWindow())
		if err == nil && count > int64(cfg.ThrottlePerEmail) {
			nlog.Logger().Warn().Str("email", email).Int64("count", count).Msg("password reset throttled")
			return
		}
	}

	var user model.User
	if err := as.dbClient.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			nlog.Logger().Error().Err(err).Msg("password reset lookup failed")
		}

		return
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		nlog.Logger().Error().Err(err).Msg("generate reset token failed")
		return
	}

	plain := hex.EncodeToString(raw)
	token := model.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashResetToken(plain),
		ExpiresAt: time.Now().Add(cfg.GetResetTokenTTL()),
	}

	// 同一用户最多保留一个未使用令牌
	err := as.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND used_at IS NULL", user.ID).
			Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}

		return tx.Create(&token).Error
	})
	if err != nil {
		nlog.Logger().Error().Err(err).Uint("user_id", user.ID).Msg("store reset token failed")
		return
	}

	as.sendResetMail(user.Email, plain)

	if msg, err := queue.NewWatermillMessage(queue.TopicPasswordResetRequested, queue.PasswordResetPayload{
		UserID: user.ID,
		Email:  user.Email,
	}); err == nil {
		_ = as.mqClient.Publish(ctx, queue.TopicPasswordResetRequested, msg)
	}
}

// sendResetMail 异步投递重置邮件，失败只记日志.
func (as *AuthService) sendResetMail(to, plainToken string) {
	mailer, err := mail.GetMailer()
	if err != nil {
		nlog.Logger().Error().Err(err).Msg("mailer unavailable")
		return
	}

	cfg := configs.GetConfig().Auth

	body := fmt.Sprintf("您的密码重置令牌：%s\n\n%d 分钟内有效，且只能使用一次。", plainToken, cfg.ResetTokenTTLMinutes)
	if cfg.ResetURLBase != "" {
		body = fmt.Sprintf("请访问以下链接重置密码：\n%s?token=%s\n\n%d 分钟内有效，且只能使用一次。",
			cfg.ResetURLBase, plainToken, cfg.ResetTokenTTLMinutes)
	}

	mailer.SendAsync(to, "密码重置", body)
}

// ResetPassword 消费重置令牌. 缺失/已使用 → invalid_token，过期 → expired_token；
// 改密与令牌标记在同一事务内完成.
func (as *AuthService) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	var token model.PasswordResetToken
	if err := as.dbClient.WithContext(ctx).
		Where("token_hash = ?", hashResetToken(req.Token)).
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}

		return err
	}

	if token.Used() {
		return ErrInvalidToken
	}

	if token.Expired(time.Now()) {
		return ErrExpiredToken
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	now := time.Now()

	err = as.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("id = ?", token.UserID).
			Update("password_hash", hashed).Error; err != nil {
			return err
		}

		return tx.Model(&model.PasswordResetToken{}).
			Where("id = ?", token.ID).
			Update("used_at", &now).Error
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, as.mqClient, model.AuditPasswordReset, &token.UserID, "user", fmt.Sprintf("%d", token.UserID), "")

	return nil
}
