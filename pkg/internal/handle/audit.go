package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/types"
)

// ListAudit 处理审计查询请求.
//
//	@Summary		审计列表
//	@Description	分页列出审计记录，按时间倒序，可按动作过滤
//	@Tags			审计
//	@Produce		json
//	@Param			action		query		string					false	"动作过滤，如 file.uploaded"
//	@Param			page		query		int						false	"页码"
//	@Param			page_size	query		int						false	"每页数量"
//	@Success		200			{object}	types.ListAuditResponse	"审计记录"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/audit [get]
func ListAudit(c *gin.Context) {
	var req types.ListAuditRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
		return
	}

	svc := service.NewAuditService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
