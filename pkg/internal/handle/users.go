package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}

	return uint(id), true
}

// CreateUser 处理管理员建号请求.
//
//	@Summary		建立账号
//	@Description	管理员直接建立账号，可指定角色与初始状态
//	@Tags			账号管理
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.CreateUserRequest	true	"建号请求"
//	@Success		201		{object}	types.UserResponse		"新账号"
//	@Failure		409		{object}	map[string]string		"邮箱已占用"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/users [post]
func CreateUser(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewUserService(c.Request.Context())

	user, err := svc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.UserResponse{User: *user})
}

// ListUsers 处理账号列表请求.
//
//	@Summary		账号列表
//	@Description	分页列出全部账号
//	@Tags			账号管理
//	@Produce		json
//	@Param			page		query		int						false	"页码"
//	@Param			page_size	query		int						false	"每页数量"
//	@Success		200			{object}	types.ListUsersResponse	"账号列表"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/users [get]
func ListUsers(c *gin.Context) {
	var req types.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		return
	}

	svc := service.NewUserService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PatchUser 处理账号部分更新请求.
//
//	@Summary		更新账号
//	@Description	部分更新名称、角色、状态与订阅开关，未出现的字段不变
//	@Tags			账号管理
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"用户ID"
//	@Param			body	body		types.UpdateUserRequest	true	"更新请求"
//	@Success		200		{object}	types.UserResponse		"更新后的账号"
//	@Failure		404		{object}	map[string]string		"账号不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/users/{id} [patch]
func PatchUser(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	var req types.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewUserService(c.Request.Context())

	user, err := svc.Patch(c.Request.Context(), actor, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UserResponse{User: *user})
}

// DeleteUser 处理删号请求.
//
//	@Summary		删除账号
//	@Description	级联清理分配、资料与重置令牌；其上传的文件保留并解除归属
//	@Tags			账号管理
//	@Produce		json
//	@Param			id	path		int					true	"用户ID"
//	@Success		200	{object}	types.OKResponse	"删除成功"
//	@Failure		404	{object}	map[string]string	"账号不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	svc := service.NewUserService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
