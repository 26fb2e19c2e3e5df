// Package storage 聚合进程内的存储资源：关系数据库、对象存储、KV 与消息队列.
// 客户端在进程入口初始化一次，通过依赖注入传给各 handler/service，
// 生命周期（优雅关闭）由入口负责.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//	if err != nil {
//	    // 处理错误
//	}
//	defer mgr.Close()
package storage

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	dbc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
	kvc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/kv"
	mqc "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/mq"
	s3c "github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/s3"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB *dbc.Client
	S3 *s3c.Client
	KV *kvc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置. 各后端并行初始化，重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			dbi, e := dbc.New(gctx, &cfg.DB)
			if e != nil {
				return e
			}

			m.DB = dbi

			return nil
		})

		g.Go(func() error {
			s3i, e := s3c.New(gctx, &cfg.S3)
			if e != nil {
				return e
			}

			m.S3 = s3i

			return nil
		})

		g.Go(func() error {
			kvi, e := kvc.New(gctx, &cfg.KV)
			if e != nil {
				return e
			}

			m.KV = kvi

			return nil
		})

		g.Go(func() error {
			mqi, e := mqc.New(gctx, &cfg.MQ)
			if e != nil {
				return e
			}

			m.MQ = mqi

			return nil
		})

		if err = g.Wait(); err != nil {
			return
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// Close 依次关闭所有后端连接.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.KV != nil {
		if e := m.KV.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if e := m.DB.Close(); e != nil {
			err = e
		}
	}

	return err
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
