package handle_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/handle"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// TestMoveFileEnvelope 移动文件的成功响应包裹在 file 键下.
func TestMoveFileEnvelope(t *testing.T) {
	ctx := newHandlerCtx(t)
	user, token := createSessionUser(t, ctx, "move-env@example.com", model.RoleUser)

	dbClient := ctxPkg.GetDBClient(ctx)

	file := model.File{
		ID:           "01HANDLEMOVEENVELOPE000001",
		Title:        "scan",
		OriginalName: "scan.pdf",
		ObjectKey:    "u/scan.pdf",
		Mime:         "application/pdf",
		UploadedByID: &user.ID,
	}
	if err := dbClient.WithContext(ctx).Create(&file).Error; err != nil {
		t.Fatalf("create file: %v", err)
	}

	folder := model.PdfFolder{Name: "Scans", OwnerID: user.ID}
	if err := dbClient.WithContext(ctx).Create(&folder).Error; err != nil {
		t.Fatalf("create folder: %v", err)
	}

	w := doJSONAs(ctx, token, http.MethodPatch, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: file.ID}}
		handle.MoveFileToFolder(c)
	}, "/api/v1/files/"+file.ID+"/pdf-folder", fmt.Sprintf(`{"pdf_folder_id":%d}`, folder.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.FileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.File.ID != file.ID {
		t.Fatalf("unexpected file envelope: %+v", resp)
	}

	if resp.File.PdfFolderID == nil || *resp.File.PdfFolderID != folder.ID {
		t.Fatalf("expected pdf_folder_id %d, got %v", folder.ID, resp.File.PdfFolderID)
	}
}
