package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	dbc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	kvc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/kv"
	mqc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
)

// newTestCtx 为单个测试搭建存储环境：
// 进程内 sqlite（每个测试独立库）、内存 KV、go channel MQ.
func newTestCtx(t *testing.T) context.Context {
	t.Helper()

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

	mgr := &storage.Manager{
		DB: &dbc.Client{DB: gdb},
		KV: kvClient,
		MQ: mqClient,
	}

	return ctxPkg.WithStorageManager(ctx, mgr)
}

// mustCreateUser 直接落库建立账号，绕过口令哈希以加速测试.
func mustCreateUser(t *testing.T, ctx context.Context, email string, role model.Role, status model.Status) *model.User {
	t.Helper()

	user := model.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       status,
	}

	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	return &user
}

// mustCreateFile 直接落库一条文件元数据.
func mustCreateFile(t *testing.T, ctx context.Context, id string, uploadedBy *uint, mime, name string) *model.File {
	t.Helper()

	file := model.File{
		ID:           id,
		Title:        name,
		OriginalName: name,
		ObjectKey:    "files/test/" + id,
		Mime:         mime,
		Size:         128,
		UploadedByID: uploadedBy,
	}

	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Create(&file).Error; err != nil {
		t.Fatalf("create file %s: %v", id, err)
	}

	return &file
}

func adminPrincipal(u *model.User) service.Principal {
	return service.Principal{UserID: u.ID, Role: model.RoleAdmin}
}

func userPrincipal(u *model.User) service.Principal {
	return service.Principal{UserID: u.ID, Role: model.RoleUser}
}
