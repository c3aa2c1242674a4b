package repository

import "mergington-api/internal/model"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Activity ActivityRepository
}

// NewRepository 以初始活动数据创建 Repository 聚合
func NewRepository(seed []model.Activity) *Repository {
	return &Repository{
		Activity: NewActivityRepo(seed),
	}
}
