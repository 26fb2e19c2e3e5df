package service_test

import (
	"errors"
	"testing"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// TestFileListScopes 列表按 scope 裁剪：mine/assigned/all，非管理员到不了 all.
func TestFileListScopes(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "files-admin@example.com", model.RoleAdmin, model.StatusActive)
	user := mustCreateUser(t, ctx, "files-user@example.com", model.RoleUser, model.StatusActive)

	adminFile := mustCreateFile(t, ctx, "01FILELISTADMIN00000000001", &admin.ID, "application/pdf", "admin.pdf")
	userFile := mustCreateFile(t, ctx, "01FILELISTUSER000000000001", &user.ID, "application/pdf", "user.pdf")

	if _, _, err := service.NewAssignmentService(ctx).Assign(ctx, adminPrincipal(admin), &types.AssignFileRequest{
		FileID: adminFile.ID,
		UserID: user.ID,
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	svc := service.NewFileService(ctx)

	mine, err := svc.List(ctx, userPrincipal(user), "mine")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}

	if mine.Total != 1 || mine.Files[0].ID != userFile.ID {
		t.Fatalf("mine should only contain own upload, got %+v", mine)
	}

	assigned, err := svc.List(ctx, userPrincipal(user), "assigned")
	if err != nil {
		t.Fatalf("list assigned: %v", err)
	}

	if assigned.Total != 1 || assigned.Files[0].ID != adminFile.ID {
		t.Fatalf("assigned should only contain assigned file, got %+v", assigned)
	}

	// 非管理员请求 all 退化为 mine
	leaked, err := svc.List(ctx, userPrincipal(user), "all")
	if err != nil {
		t.Fatalf("list all as user: %v", err)
	}

	if leaked.Total != 1 || leaked.Files[0].ID != userFile.ID {
		t.Fatalf("all as non-admin must behave like mine, got %+v", leaked)
	}

	all, err := svc.List(ctx, adminPrincipal(admin), "all")
	if err != nil {
		t.Fatalf("list all as admin: %v", err)
	}

	if all.Total != 2 {
		t.Fatalf("admin all should see both files, got %d", all.Total)
	}
}

// TestFileListEmbedsUploader 列表内嵌上传者标识.
func TestFileListEmbedsUploader(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "files-uploader@example.com", model.RoleAdmin, model.StatusActive)
	mustCreateFile(t, ctx, "01FILEUPLOADERINFO00000001", &admin.ID, "application/pdf", "a.pdf")

	resp, err := service.NewFileService(ctx).List(ctx, adminPrincipal(admin), "mine")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("expected one file, got %d", resp.Total)
	}

	uploader := resp.Files[0].UploadedBy
	if uploader == nil || uploader.ID != admin.ID || uploader.Email != admin.Email {
		t.Fatalf("expected embedded uploader %d, got %+v", admin.ID, uploader)
	}
}

// TestMoveToFolder 归档只接受 PDF，目标文件夹须归调用方所有.
func TestMoveToFolder(t *testing.T) {
	ctx := newTestCtx(t)
	owner := mustCreateUser(t, ctx, "move-owner@example.com", model.RoleUser, model.StatusActive)
	other := mustCreateUser(t, ctx, "move-other@example.com", model.RoleUser, model.StatusActive)

	pdf := mustCreateFile(t, ctx, "01MOVEPDF00000000000000001", &owner.ID, "application/pdf", "doc.pdf")
	xlsx := mustCreateFile(t, ctx, "01MOVEXLSX0000000000000001", &owner.ID,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "sheet.xlsx")

	folderSvc := service.NewFolderService(ctx)

	folder, err := folderSvc.Create(ctx, userPrincipal(owner), &types.CreateFolderRequest{Name: "Mine"})
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}

	foreign, err := folderSvc.Create(ctx, userPrincipal(other), &types.CreateFolderRequest{Name: "Foreign"})
	if err != nil {
		t.Fatalf("create foreign folder: %v", err)
	}

	svc := service.NewFileService(ctx)

	// Excel 不能归档
	if _, err := svc.MoveToFolder(ctx, userPrincipal(owner), xlsx.ID, &types.MoveFileToFolderRequest{
		PdfFolderID: &folder.ID,
	}); !errors.Is(err, service.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}

	// 目标文件夹归他人所有
	if _, err := svc.MoveToFolder(ctx, userPrincipal(owner), pdf.ID, &types.MoveFileToFolderRequest{
		PdfFolderID: &foreign.ID,
	}); !errors.Is(err, service.ErrFolderNotFound) {
		t.Fatalf("foreign folder: expected ErrFolderNotFound, got %v", err)
	}

	// 目标文件夹不存在
	missing := folder.ID + 1000
	if _, err := svc.MoveToFolder(ctx, userPrincipal(owner), pdf.ID, &types.MoveFileToFolderRequest{
		PdfFolderID: &missing,
	}); !errors.Is(err, service.ErrFolderNotFound) {
		t.Fatalf("missing folder: expected ErrFolderNotFound, got %v", err)
	}

	moved, err := svc.MoveToFolder(ctx, userPrincipal(owner), pdf.ID, &types.MoveFileToFolderRequest{
		PdfFolderID: &folder.ID,
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}

	if moved.PdfFolderID == nil || *moved.PdfFolderID != folder.ID {
		t.Fatalf("expected pdf_folder_id %d, got %v", folder.ID, moved.PdfFolderID)
	}

	// null 表示移出文件夹
	cleared, err := svc.MoveToFolder(ctx, userPrincipal(owner), pdf.ID, &types.MoveFileToFolderRequest{})
	if err != nil {
		t.Fatalf("move out: %v", err)
	}

	if cleared.PdfFolderID != nil {
		t.Fatalf("expected pdf_folder_id cleared, got %v", *cleared.PdfFolderID)
	}
}

// TestMoveToFolderVisibility 不可见文件的归档请求表现为 ErrNotFound.
func TestMoveToFolderVisibility(t *testing.T) {
	ctx := newTestCtx(t)
	owner := mustCreateUser(t, ctx, "move-vis-owner@example.com", model.RoleUser, model.StatusActive)
	stranger := mustCreateUser(t, ctx, "move-vis-stranger@example.com", model.RoleUser, model.StatusActive)
	pdf := mustCreateFile(t, ctx, "01MOVEVISIBILITY0000000001", &owner.ID, "application/pdf", "secret.pdf")

	if _, err := service.NewFileService(ctx).MoveToFolder(ctx, userPrincipal(stranger), pdf.ID,
		&types.MoveFileToFolderRequest{}); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestMoveToFolderAdminOverride 管理员可通过 OwnerID 代文件夹所有者归档.
func TestMoveToFolderAdminOverride(t *testing.T) {
	ctx := newTestCtx(t)
	admin := mustCreateUser(t, ctx, "move-admin@example.com", model.RoleAdmin, model.StatusActive)
	user := mustCreateUser(t, ctx, "move-admin-user@example.com", model.RoleUser, model.StatusActive)
	pdf := mustCreateFile(t, ctx, "01MOVEADMINOVERRIDE0000001", &admin.ID, "application/pdf", "handout.pdf")

	folder, err := service.NewFolderService(ctx).Create(ctx, userPrincipal(user), &types.CreateFolderRequest{Name: "Inbox"})
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}

	svc := service.NewFileService(ctx)

	moved, err := svc.MoveToFolder(ctx, adminPrincipal(admin), pdf.ID, &types.MoveFileToFolderRequest{
		PdfFolderID: &folder.ID,
		OwnerID:     &user.ID,
	})
	if err != nil {
		t.Fatalf("admin move: %v", err)
	}

	if moved.PdfFolderID == nil || *moved.PdfFolderID != folder.ID {
		t.Fatalf("expected pdf_folder_id %d, got %v", folder.ID, moved.PdfFolderID)
	}

}

// TestIsPDF 按 mime 或扩展名识别 PDF，大小写不敏感.
func TestIsPDF(t *testing.T) {
	cases := []struct {
		mime, name string
		want       bool
	}{
		{"application/pdf", "a.bin", true},
		{"application/octet-stream", "scan.PDF", true},
		{"application/octet-stream", "sheet.xlsx", false},
		{"APPLICATION/PDF", "x", true},
	}

	for _, tc := range cases {
		f := model.File{Mime: tc.mime, OriginalName: tc.name}
		if got := f.IsPDF(); got != tc.want {
			t.Errorf("IsPDF(%q, %q) = %v, want %v", tc.mime, tc.name, got, tc.want)
		}
	}
}
