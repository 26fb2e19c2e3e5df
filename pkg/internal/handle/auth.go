package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// Register 处理注册请求.
//
//	@Summary		注册账号
//	@Description	开放注册，新账号初始为 PENDING；仅 SUSPENDED 状态拒绝登录
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.RegisterRequest	true	"注册请求"
//	@Success		201		{object}	types.UserInfo			"已建立的账号"
//	@Failure		400		{object}	map[string]string		"请求参数错误"
//	@Failure		409		{object}	map[string]string		"邮箱已占用"
//	@Router			/api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context())

	user, err := svc.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login 处理登录请求.
//
//	@Summary		登录
//	@Description	校验邮箱口令并签发会话 JWT；SUSPENDED 账号拒绝登录
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.LoginRequest	true	"登录请求"
//	@Success		200		{object}	types.LoginResponse	"会话令牌与账号信息"
//	@Failure		401		{object}	map[string]string	"凭证无效"
//	@Failure		403		{object}	map[string]string	"账号被停用"
//	@Router			/api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword 处理自助改密请求.
//
//	@Summary		修改口令
//	@Description	校验旧口令后更新为新口令
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.ChangePasswordRequest	true	"改密请求"
//	@Success		200		{object}	types.OKResponse			"修改成功"
//	@Failure		401		{object}	map[string]string			"旧口令错误"
//	@Security		BearerAuth
//	@Router			/api/v1/auth/change-password [post]
func ChangePassword(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context())

	if err := svc.ChangePassword(c.Request.Context(), actor.UserID, &req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}

// ForgotPassword 处理找回密码请求.
// 无论邮箱是否存在、是否被节流，响应都完全相同，防止账号枚举.
//
//	@Summary		找回密码
//	@Description	为邮箱签发重置令牌并发送邮件；响应不区分邮箱是否存在
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.ForgotPasswordRequest	true	"找回密码请求"
//	@Success		200		{object}	types.OKResponse			"统一成功响应"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Router			/api/v1/auth/forgot-password [post]
func ForgotPassword(c *gin.Context) {
	var req types.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context())
	svc.ForgotPassword(c.Request.Context(), req.Email)

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}

// ResetPassword 处理凭令牌重置口令的请求.
//
//	@Summary		重置口令
//	@Description	校验重置令牌并设置新口令，令牌一次性使用
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.ResetPasswordRequest	true	"重置请求"
//	@Success		200		{object}	types.OKResponse			"重置成功"
//	@Failure		400		{object}	map[string]string			"令牌无效或过期"
//	@Router			/api/v1/auth/reset-password [post]
func ResetPassword(c *gin.Context) {
	var req types.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context())

	if err := svc.ResetPassword(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
