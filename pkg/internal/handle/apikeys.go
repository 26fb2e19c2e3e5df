package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// CreateAPIKey 处理签发接口密钥请求.
//
//	@Summary		签发接口密钥
//	@Description	生成新密钥，明文只在本次响应返回一次，之后仅存散列
//	@Tags			接口密钥
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.CreateAPIKeyRequest	true	"签发请求"
//	@Success		201		{object}	types.CreateAPIKeyResponse	"新密钥（含明文）"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/api-keys [post]
func CreateAPIKey(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.CreateAPIKeyRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAPIKeyService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListAPIKeys 处理密钥列表请求.
//
//	@Summary		密钥列表
//	@Description	列出全部接口密钥（不含明文与散列）
//	@Tags			接口密钥
//	@Produce		json
//	@Success		200	{object}	types.ListAPIKeysResponse	"密钥列表"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/api-keys [get]
func ListAPIKeys(c *gin.Context) {
	svc := service.NewAPIKeyService(c.Request.Context())

	resp, err := svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeAPIKey 处理吊销密钥请求.
//
//	@Summary		吊销密钥
//	@Description	将密钥置为不可用，记录保留
//	@Tags			接口密钥
//	@Produce		json
//	@Param			id	path		int					true	"密钥ID"
//	@Success		200	{object}	types.OKResponse	"吊销成功"
//	@Failure		404	{object}	map[string]string	"密钥不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/api-keys/{id} [delete]
func RevokeAPIKey(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid api key id"})
		return
	}

	svc := service.NewAPIKeyService(c.Request.Context())

	if err := svc.Revoke(c.Request.Context(), actor, uint(id)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
