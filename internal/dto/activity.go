package dto

// ── 活动模块 DTO ──

// ActivityListRequest 活动列表查询参数
type ActivityListRequest struct {
	Lang string `form:"lang"`
}

// SignupRequest 报名请求（查询参数）
// email 不做格式校验；参数缺失由 Handler 判断，空字符串视为合法
type SignupRequest struct {
	Email string `form:"email"`
	Lang  string `form:"lang"`
}

// ExportRequest 名单导出查询参数
type ExportRequest struct {
	Lang string `form:"lang"`
}

// ActivityResponse 单个活动的本地化视图
// 只包含解析后的 description/schedule，不暴露 _zh 字段
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityListResponse 活动名称 → 本地化视图
type ActivityListResponse map[string]ActivityResponse

// SignupResponse 报名成功响应
type SignupResponse struct {
	Message string `json:"message"`
}
