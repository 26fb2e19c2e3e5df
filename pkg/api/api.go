// Package api 汇总对外 HTTP 接口的注册入口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/router"
)

// RegisterRoutes 将全部业务路由与文档路由注册到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine) *gin.Engine {
	router.RegisterRoutes(e)
	router.RegisterSwaggerRoute(e)

	return e
}
