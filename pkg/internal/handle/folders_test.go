package handle_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	"github.com/igorzgk/excel-delivery-sub000/pkg/middleware"
)

// createSessionUser 建立一个账号行并为其签发会话令牌.
func createSessionUser(t *testing.T, ctx context.Context, email string, role model.Role) (*model.User, string) {
	t.Helper()

	user := model.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       model.StatusActive,
	}
	if err := ctxPkg.GetDBClient(ctx).WithContext(ctx).Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	token, err := service.IssueToken(&user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	return &user, token
}

// doJSONAs 带会话令牌调用单个 handler，请求先过认证中间件.
func doJSONAs(ctx context.Context, token, method string, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	c.Request = req.WithContext(ctx)

	middleware.AuthMiddleware(configs.GetConfig().Auth)(c)
	if !c.IsAborted() {
		handler(c)
	}

	return w
}

// TestCreateFolderEnvelope 创建文件夹的成功响应包裹在 folder 键下，
// 同名冲突返回 400 与 folder_exists.
func TestCreateFolderEnvelope(t *testing.T) {
	ctx := newHandlerCtx(t)
	_, token := createSessionUser(t, ctx, "folder-env@example.com", model.RoleUser)

	w := doJSONAs(ctx, token, http.MethodPost, handle.CreateFolder,
		"/api/v1/pdf-folders", `{"name":"Invoices"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.FolderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Folder.ID == 0 || resp.Folder.Name != "Invoices" {
		t.Fatalf("unexpected folder envelope: %+v", resp)
	}

	w = doJSONAs(ctx, token, http.MethodPost, handle.CreateFolder,
		"/api/v1/pdf-folders", `{"name":"Invoices"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate folder: expected 400, got %d: %s", w.Code, w.Body.String())
	}

	if !strings.Contains(w.Body.String(), "folder_exists") {
		t.Fatalf("expected folder_exists code, got %s", w.Body.String())
	}
}

// TestRenameFolderEnvelope 重命名的成功响应同样包裹在 folder 键下.
func TestRenameFolderEnvelope(t *testing.T) {
	ctx := newHandlerCtx(t)
	_, token := createSessionUser(t, ctx, "rename-env@example.com", model.RoleUser)

	w := doJSONAs(ctx, token, http.MethodPost, handle.CreateFolder,
		"/api/v1/pdf-folders", `{"name":"Drafts"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created types.FolderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	w = doJSONAs(ctx, token, http.MethodPatch, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", created.Folder.ID)}}
		handle.RenameFolder(c)
	}, "/api/v1/pdf-folders/1", `{"name":"Archive"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("rename: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var renamed types.FolderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &renamed); err != nil {
		t.Fatalf("decode rename response: %v", err)
	}

	if renamed.Folder.ID != created.Folder.ID || renamed.Folder.Name != "Archive" {
		t.Fatalf("unexpected rename envelope: %+v", renamed)
	}
}
