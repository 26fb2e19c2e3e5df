package service_test

import (
	"context"
	"testing"
	"time"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// seedAudit 直接落库若干审计记录.
func seedAudit(t *testing.T, ctx context.Context, entries []model.AuditLog) {
	t.Helper()

	dbClient := ctxPkg.GetDBClient(ctx)
	for i := range entries {
		if err := dbClient.WithContext(ctx).Create(&entries[i]).Error; err != nil {
			t.Fatalf("seed audit entry %d: %v", i, err)
		}
	}
}

// TestAuditListFilterAndOrder 审计查询按时间倒序，可按动作过滤.
func TestAuditListFilterAndOrder(t *testing.T) {
	ctx := newTestCtx(t)
	base := time.Now().Add(-time.Hour)

	seedAudit(t, ctx, []model.AuditLog{
		{Action: model.AuditFileUploaded, Target: "file", TargetID: "f1", CreatedAt: base},
		{Action: model.AuditFileDownloaded, Target: "file", TargetID: "f1", CreatedAt: base.Add(time.Minute)},
		{Action: model.AuditFileUploaded, Target: "file", TargetID: "f2", CreatedAt: base.Add(2 * time.Minute)},
	})

	svc := service.NewAuditService(ctx)

	all, err := svc.List(ctx, &types.ListAuditRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if all.Total != 3 || len(all.Entries) != 3 {
		t.Fatalf("expected 3 entries, got total=%d len=%d", all.Total, len(all.Entries))
	}

	// 最新事件排在最前
	if all.Entries[0].TargetID != "f2" {
		t.Fatalf("expected newest first, got %+v", all.Entries[0])
	}

	uploads, err := svc.List(ctx, &types.ListAuditRequest{Action: string(model.AuditFileUploaded)})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}

	if uploads.Total != 2 {
		t.Fatalf("expected 2 upload entries, got %d", uploads.Total)
	}

	for _, e := range uploads.Entries {
		if e.Action != string(model.AuditFileUploaded) {
			t.Fatalf("filter leaked action %s", e.Action)
		}
	}
}

// TestAuditListPagination 分页参数生效.
func TestAuditListPagination(t *testing.T) {
	ctx := newTestCtx(t)
	base := time.Now().Add(-time.Hour)

	entries := make([]model.AuditLog, 0, 5)
	for i := range 5 {
		entries = append(entries, model.AuditLog{
			Action:    model.AuditUserUpdated,
			Target:    "user",
			TargetID:  "u1",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	seedAudit(t, ctx, entries)

	svc := service.NewAuditService(ctx)

	page, err := svc.List(ctx, &types.ListAuditRequest{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}

	if page.Total != 5 || len(page.Entries) != 2 {
		t.Fatalf("expected total 5 / page 2, got %d / %d", page.Total, len(page.Entries))
	}
}
