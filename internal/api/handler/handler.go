package handler

import "mergington-api/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Activity *ActivityHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Activity: NewActivityHandler(svc.Activity),
		Export:   NewExportHandler(svc.Export),
	}
}
