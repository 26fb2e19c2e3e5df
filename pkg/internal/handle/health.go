// Package handle 新增健康检查处理器实现.
package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/igorzgk/excel-delivery-sub000/pkg/context"
)

const timeout = 2 * time.Second

// Health 总体健康检查，任一依赖不可用即 503.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	components := gin.H{}
	healthy := true

	if dbc := ctxPkg.GetDBClient(ctx); dbc != nil && dbc.DB != nil {
		if sqlDB, err := dbc.DB.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			components["db"] = "ok"
		} else {
			components["db"] = "unhealthy"
			healthy = false
		}
	} else {
		components["db"] = "unhealthy"
		healthy = false
	}

	if s3c := ctxPkg.GetS3Client(ctx); s3c != nil && s3c.HealthCheck(ctx) == nil {
		components["s3"] = "ok"
	} else {
		components["s3"] = "unhealthy"
		healthy = false
	}

	if mqc := ctxPkg.GetMQClient(ctx); mqc != nil {
		components["mq"] = "ok"
	} else {
		components["mq"] = "unhealthy"
		healthy = false
	}

	status := http.StatusOK
	overall := "ok"

	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{"status": overall, "components": components})
}

// HealthDB 数据库健康检查.
func HealthDB(c *gin.Context) {
	dbc := ctxPkg.GetDBClient(c.Request.Context())
	if dbc == nil || dbc.DB == nil { // dbc.DB 来自于嵌入的 *gorm.DB
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": "db client not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	sqlDB, err := dbc.DB.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": err.Error()})
		return
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "db", "status": "ok"})
}

// HealthS3 对象存储健康检查.
func HealthS3(c *gin.Context) {
	s3c := ctxPkg.GetS3Client(c.Request.Context())
	if s3c == nil || s3c.Client == nil { // s3c.Client 为底层 *minio.Client
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "s3", "status": "unhealthy", "error": "s3 client not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	if err := s3c.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "s3", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "s3", "status": "ok"})
}

// HealthMQ 消息队列健康检查.
func HealthMQ(c *gin.Context) {
	mqc := ctxPkg.GetMQClient(c.Request.Context())
	if mqc == nil { // publisher 与 subscriber 初始化在 New 中, 判空即可
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "mq", "status": "unhealthy", "error": "mq client not initialized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "mq", "status": "ok"})
}
