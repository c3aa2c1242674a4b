package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"mergington-api/internal/dto"
	"mergington-api/internal/i18n"
	"mergington-api/internal/service"
	"mergington-api/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRosters 导出全部活动报名名单
// GET /activities/export?lang=zh
func (h *ExportHandler) ExportRosters(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.UnprocessableEntity(c, invalidRequest(RequestLang(c), "lang"))
		return
	}

	buf, filename, err := h.exportSvc.ExportRosters(c.Request.Context(), i18n.ParseLang(req.Lang))
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	// 设置下载响应头
	encodedFilename := url.PathEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
