package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// AssignFile 处理文件分配请求，幂等.
//
//	@Summary		分配文件
//	@Description	将文件分配给用户；重复分配返回既有记录（200），新建返回 201
//	@Tags			分配
//	@Accept			json
//	@Produce		json
//	@Param			body	body		types.AssignFileRequest		true	"分配请求"
//	@Success		200		{object}	types.AssignFileResponse	"命中既有分配"
//	@Success		201		{object}	types.AssignFileResponse	"新建分配"
//	@Failure		404		{object}	map[string]string			"文件或用户不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/assignments [post]
func AssignFile(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req types.AssignFileRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := service.NewAssignmentService(c.Request.Context())

	resp, created, err := svc.Assign(c.Request.Context(), actor, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, resp)
}
