package service

import (
	"go.uber.org/zap"

	"mergington-api/config"
	"mergington-api/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Activity ActivityService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		Activity: NewActivityService(&cfg.Activity, repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
