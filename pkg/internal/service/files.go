package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/s3"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
	"github.com/igorzgk/excel-delivery-sub000/pkg/metrics"
	"github.com/igorzgk/excel-delivery-sub000/pkg/queue"
)

// MaxUploadSize 单文件上传上限.
const MaxUploadSize = 50 << 20 // 50 MiB

// 全局单例的 ULID 熵源，使用单调递增策略，确保同一毫秒内生成的 ULID 具有排序稳定性。
var ulidEntropy = ulid.Monotonic(crand.Reader, 0)

// newFileID 生成文件主键 ULID.
func newFileID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulidEntropy).String()
}

// allowedUploadExt 可接受的上传扩展名：Excel 与 PDF.
var allowedUploadExt = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".pdf":  true,
}

type FileService struct {
	s3Client *s3.Client
	dbClient *db.Client
	mqClient *mq.Client
}

func NewFileService(c context.Context) *FileService {
	return &FileService{
		s3Client: ctxPkg.GetS3Client(c),
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// visibleFile 按可见性谓词取文件：上传者本人、被分配者或管理员可见.
// 不可见与不存在同样返回 ErrNotFound，不泄露资源存在性.
func (fs *FileService) visibleFile(ctx context.Context, actor Principal, fileID string) (*model.File, error) {
	var file model.File
	if err := fs.dbClient.WithContext(ctx).First(&file, "id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	if actor.IsAdmin() {
		return &file, nil
	}

	if file.UploadedByID != nil && *file.UploadedByID == actor.UserID {
		return &file, nil
	}

	var count int64
	if err := fs.dbClient.WithContext(ctx).Model(&model.FileAssignment{}).
		Where("file_id = ? AND user_id = ?", fileID, actor.UserID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, ErrNotFound
	}

	return &file, nil
}

func toFileInfo(f *model.File) types.FileInfo {
	info := types.FileInfo{
		ID:           f.ID,
		Title:        f.Title,
		OriginalName: f.OriginalName,
		Mime:         f.Mime,
		Size:         f.Size,
		PdfFolderID:  f.PdfFolderID,
		CreatedAt:    f.CreatedAt,
	}

	if f.UploadedBy != nil {
		info.UploadedBy = &types.UploaderInfo{
			ID:    f.UploadedBy.ID,
			Name:  f.UploadedBy.Name,
			Email: f.UploadedBy.Email,
		}
	}

	return info
}

// List 按 scope 列出文件，新者在前，内嵌上传者标识.
// 非管理员：assigned → 分配给自己的；其余一律按 mine 处理，永远到不了 all.
// 管理员：mine → 自己上传，assigned → 分配给自己，all → 全量.
func (fs *FileService) List(ctx context.Context, actor Principal, scope string) (*types.ListFilesResponse, error) {
	q := fs.dbClient.WithContext(ctx).Model(&model.File{}).Preload("UploadedBy")

	switch {
	case scope == "assigned":
		q = q.Joins("JOIN file_assignments ON file_assignments.file_id = files.id").
			Where("file_assignments.user_id = ?", actor.UserID)
	case scope == "all" && actor.IsAdmin():
		// 无过滤
	default:
		q = q.Where("uploaded_by_id = ?", actor.UserID)
	}

	var rows []model.File
	if err := q.Order("files.created_at DESC, files.id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	files := make([]types.FileInfo, 0, len(rows))
	for i := range rows {
		files = append(files, toFileInfo(&rows[i]))
	}

	return &types.ListFilesResponse{Files: files, Total: len(files)}, nil
}

// Upload 接收 multipart 文件：校验类型与大小，对象入 S3，元数据落库，发布事件.
func (fs *FileService) Upload(ctx context.Context, actor Principal, req *types.UploadFileRequest, header *multipart.FileHeader) (*types.FileInfo, error) {
	if header.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExt[ext] {
		return nil, ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	now := time.Now().UTC()
	fileID := newFileID(now)
	objectKey := fmt.Sprintf("files/%s/%s%s", now.Format("2006/01"), fileID, ext)

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := fs.s3Client.Put(ctx, objectKey, src, header.Size, mime); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = header.Filename
	}

	file := model.File{
		ID:           fileID,
		Title:        title,
		OriginalName: header.Filename,
		ObjectKey:    objectKey,
		Mime:         mime,
		Size:         header.Size,
		UploadedByID: actor.actorID(),
	}

	if err := fs.dbClient.WithContext(ctx).Create(&file).Error; err != nil {
		// 元数据落库失败时回收已写入的对象
		_ = fs.s3Client.Remove(ctx, objectKey)

		return nil, err
	}

	metrics.FileUploadCounter.WithLabelValues(ext).Inc()
	recordAudit(ctx, fs.mqClient, model.AuditFileUploaded, actor.actorID(), "file", file.ID,
		fmt.Sprintf(`{"original_name":%q,"size":%d}`, file.OriginalName, file.Size))

	payload := queue.FileUploadedPayload{
		File: queue.FileRef{
			FileID:      file.ID,
			Bucket:      fs.s3Client.Bucket(),
			ObjectKey:   file.ObjectKey,
			Title:       file.Title,
			ContentType: file.Mime,
			Size:        file.Size,
		},
		UploadedByID: actor.UserID,
		OriginalName: file.OriginalName,
	}
	if msg, err := queue.NewWatermillMessage(queue.TopicFileUploaded, payload); err == nil {
		_ = fs.mqClient.Publish(ctx, queue.TopicFileUploaded, msg)
	}

	info := toFileInfo(&file)

	return &info, nil
}

// Download 可见性校验后生成限时预签名 GET 链接并记录审计.
func (fs *FileService) Download(ctx context.Context, actor Principal, fileID string) (*types.DownloadLinkResponse, error) {
	file, err := fs.visibleFile(ctx, actor, fileID)
	if err != nil {
		return nil, err
	}

	url, err := fs.s3Client.PresignedGet(ctx, file.ObjectKey, file.OriginalName)
	if err != nil {
		return nil, err
	}

	metrics.DownloadLinkCounter.Inc()
	recordAudit(ctx, fs.mqClient, model.AuditFileDownloaded, actor.actorID(), "file", file.ID, "")

	if msg, err := queue.NewWatermillMessage(queue.TopicFileDownloaded, queue.FileDownloadedPayload{
		File:     queue.FileRef{FileID: file.ID, ObjectKey: file.ObjectKey, Title: file.Title},
		UserID:   actor.UserID,
		ViaAdmin: actor.IsAdmin(),
	}); err == nil {
		_ = fs.mqClient.Publish(ctx, queue.TopicFileDownloaded, msg)
	}

	expiry := configs.GetConfig().S3.GetPresignExpiry()

	return &types.DownloadLinkResponse{URL: url, ExpiresIn: int(expiry.Seconds())}, nil
}

// Delete 删除文件：分配关系与元数据行在同一事务内移除，随后尽力删除对象本体.
func (fs *FileService) Delete(ctx context.Context, actor Principal, fileID string) error {
	var file model.File
	if err := fs.dbClient.WithContext(ctx).First(&file, "id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	var removed int64

	err := fs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("file_id = ?", fileID).Delete(&model.FileAssignment{})
		if res.Error != nil {
			return res.Error
		}

		removed = res.RowsAffected

		return tx.Delete(&model.File{}, "id = ?", fileID).Error
	})
	if err != nil {
		return err
	}

	// 对象删除失败不回滚元数据，留给后续清理
	_ = fs.s3Client.Remove(ctx, file.ObjectKey)

	recordAudit(ctx, fs.mqClient, model.AuditFileDeleted, actor.actorID(), "file", fileID, "")

	if msg, err := queue.NewWatermillMessage(queue.TopicFileDeleted, queue.FileDeletedPayload{
		File:               queue.FileRef{FileID: fileID, ObjectKey: file.ObjectKey, Title: file.Title},
		DeletedByID:        actor.UserID,
		RemovedAssignments: removed,
	}); err == nil {
		_ = fs.mqClient.Publish(ctx, queue.TopicFileDeleted, msg)
	}

	return nil
}

// MoveToFolder 调整文件所属文件夹：
// 文件须对调用方可见且为 PDF；目标文件夹（非空时）须存在且归调用方所有，
// 管理员可代任意所有者操作.
func (fs *FileService) MoveToFolder(ctx context.Context, actor Principal, fileID string, req *types.MoveFileToFolderRequest) (*types.FileInfo, error) {
	file, err := fs.visibleFile(ctx, actor, fileID)
	if err != nil {
		return nil, err
	}

	if !file.IsPDF() {
		return nil, ErrNotPDF
	}

	if req.PdfFolderID != nil {
		owner := actor.UserID
		if req.OwnerID != nil {
			if !actor.IsAdmin() {
				return nil, ErrForbidden
			}

			owner = *req.OwnerID
		}

		var folder model.PdfFolder
		if err := fs.dbClient.WithContext(ctx).
			First(&folder, "id = ?", *req.PdfFolderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFolderNotFound
			}

			return nil, err
		}

		if folder.OwnerID != owner && !actor.IsAdmin() {
			return nil, ErrFolderNotFound
		}
	}

	if err := fs.dbClient.WithContext(ctx).Model(&model.File{}).
		Where("id = ?", fileID).
		Update("pdf_folder_id", req.PdfFolderID).Error; err != nil {
		return nil, err
	}

	file.PdfFolderID = req.PdfFolderID
	info := toFileInfo(file)

	return &info, nil
}
