package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// GetProfile 处理读取业务资料请求.
//
//	@Summary		读取资料
//	@Description	返回当前用户的业务资料，尚未填写时返回空资料
//	@Tags			业务资料
//	@Produce		json
//	@Success		200	{object}	types.ProfileInfo	"业务资料"
//	@Security		BearerAuth
//	@Router			/api/v1/profile [get]
func GetProfile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	svc := service.NewProfileService(c.Request.Context())

	profile, err := svc.Get(c.Request.Context(), actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile 处理更新业务资料请求.
//
//	@Summary		更新资料
//	@Description	部分更新业务资料，首次更新时建行
//	@Tags			业务资料
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.UpdateProfileRequest	true	"更新请求"
//	@Success		200		{object}	types.ProfileInfo			"更新后的资料"
//	@Security		BearerAuth
//	@Router			/api/v1/profile [put]
func UpdateProfile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewProfileService(c.Request.Context())

	profile, err := svc.Update(c.Request.Context(), actor.UserID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
