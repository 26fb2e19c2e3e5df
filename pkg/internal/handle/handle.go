// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/middleware"
	"github.com/igorzgk/excel-delivery-sub000/pkg/rule"
)

// errStatus 业务哨兵错误到 HTTP 状态码的映射.
// 未列出的错误一律按 500 处理且不回显内部细节.
var errStatus = map[error]int{
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrFolderExists:       http.StatusBadRequest,
	service.ErrInvalidFolderName:  http.StatusBadRequest,
	service.ErrNotPDF:             http.StatusBadRequest,
	service.ErrFolderNotFound:     http.StatusBadRequest,
	service.ErrEmailExists:        http.StatusConflict,
	service.ErrInvalidToken:       http.StatusBadRequest,
	service.ErrExpiredToken:       http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrAccountSuspended:   http.StatusForbidden,
	service.ErrUnsupportedType:    http.StatusBadRequest,
	service.ErrFileTooLarge:       http.StatusRequestEntityTooLarge,
}

// writeError 将 service 层错误转为 JSON 响应. 哨兵错误的文案即错误码字符串.
func writeError(c *gin.Context, err error) {
	for sentinel, status := range errStatus {
		if errors.Is(err, sentinel) {
			c.JSON(status, gin.H{"error": sentinel.Error()})
			return
		}
	}

	log.Logger().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

// currentPrincipal 取当前请求身份. 路由组已挂 RequireAuth，理论上必定存在.
func currentPrincipal(c *gin.Context) (service.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}

	return p, ok
}

// bindJSON 绑定并按 rule 标签校验请求体.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Logger().Warn().Err(err).Str("path", c.Request.URL.Path).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return false
	}

	if err := rule.ValidateStruct(req); err != nil {
		log.Logger().Warn().Err(err).Str("path", c.Request.URL.Path).Msg("request validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return false
	}

	return true
}
