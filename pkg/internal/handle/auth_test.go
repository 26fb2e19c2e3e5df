package handle_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	dbc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	kvc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/kv"
	mqc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
)

// newHandlerCtx 搭建带存储环境的请求上下文.
func newHandlerCtx(t *testing.T) context.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	dbName := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	gdb, err := gorm.Open(
		sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"),
		&gorm.Config{TranslateError: true, Logger: gormlogger.Discard},
	)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()

	kvClient, err := kvc.New(ctx, &configs.GetConfig().KV)
	if err != nil {
		t.Fatalf("init kv: %v", err)
	}

	mqClient, err := mqc.New(ctx, &configs.GetConfig().MQ)
	if err != nil {
		t.Fatalf("init mq: %v", err)
	}

	mgr := &storage.Manager{DB: &dbc.Client{DB: gdb}, KV: kvClient, MQ: mqClient}

	return ctxPkg.WithStorageManager(ctx, mgr)
}

// postJSON 以 JSON body 调用单个 handler，返回响应记录器.
func postJSON(ctx context.Context, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req.WithContext(ctx)

	handler(c)

	return w
}

// TestForgotPasswordNoEnumeration 找回密码的响应不区分邮箱是否存在：
// 状态码与响应体必须完全一致.
func TestForgotPasswordNoEnumeration(t *testing.T) {
	ctx := newHandlerCtx(t)

	user := model.User{
		Email:        "enum-known@example.com",
		PasswordHash: "x",
		Role:         model.RoleUser,
		Status:       model.StatusActive,
	}
	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	known := postJSON(ctx, handle.ForgotPassword, "/api/v1/auth/forgot-password",
		`{"email":"enum-known@example.com"}`)
	unknown := postJSON(ctx, handle.ForgotPassword, "/api/v1/auth/forgot-password",
		`{"email":"enum-unknown@example.com"}`)

	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", known.Code, unknown.Code)
	}

	if known.Body.String() != unknown.Body.String() {
		t.Fatalf("responses differ: %q vs %q", known.Body.String(), unknown.Body.String())
	}

	// 既有邮箱确实产生了令牌，未知邮箱没有
	var count int64
	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Model(&model.PasswordResetToken{}).
		Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}

	if count != 1 {
		t.Fatalf("expected exactly one token row, got %d", count)
	}
}

// TestForgotPasswordBadRequest 非法邮箱返回 400.
func TestForgotPasswordBadRequest(t *testing.T) {
	ctx := newHandlerCtx(t)

	w := postJSON(ctx, handle.ForgotPassword, "/api/v1/auth/forgot-password",
		`{"email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// TestRegisterEndpoint 注册成功返回 201，重复邮箱 409.
func TestRegisterEndpoint(t *testing.T) {
	ctx := newHandlerCtx(t)

	body := `{"email":"handle-reg@example.com","password":"password123","name":"Reg"}`

	w := postJSON(ctx, handle.Register, "/api/v1/auth/register", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(ctx, handle.Register, "/api/v1/auth/register", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d: %s", w.Code, w.Body.String())
	}

	if !strings.Contains(w.Body.String(), "Email already exists") {
		t.Fatalf("expected conflict code, got %s", w.Body.String())
	}
}
