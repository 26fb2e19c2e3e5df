// Package s3 处理对象存储操作，文件内容统一存放在单个 bucket 下.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	bucket        string
	presignExpiry time.Duration
}

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context, cfg *configs.S3Config) (*Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo(configs.AppName, configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("s3 connected")

	return &Client{
		Client:        cli,
		bucket:        cfg.Bucket,
		presignExpiry: cfg.GetPresignExpiry(),
	}, nil
}

// Bucket 返回文件存储使用的 bucket 名称.
func (c *Client) Bucket() string {
	return c.bucket
}

// Put 写入对象内容.
func (c *Client) Put(ctx context.Context, objectKey string, r io.Reader, size int64, contentType string) error {
	_, err := c.PutObject(ctx, c.bucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", objectKey, err)
	}

	return nil
}

// Remove 删除对象，对象不存在时也视为成功.
func (c *Client) Remove(ctx context.Context, objectKey string) error {
	if err := c.RemoveObject(ctx, c.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", objectKey, err)
	}

	return nil
}

// PresignedGet 生成下载用预签名 URL，附带 Content-Disposition 以保留原始文件名.
func (c *Client) PresignedGet(ctx context.Context, objectKey, downloadName string) (string, error) {
	reqParams := make(url.Values)
	if downloadName != "" {
		reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}

	u, err := c.PresignedGetObject(ctx, c.bucket, objectKey, c.presignExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", objectKey, err)
	}

	return u.String(), nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}
