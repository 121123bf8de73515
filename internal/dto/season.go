package dto

// ── 季节模块 DTO ──

// CreateSeasonRequest 创建季节请求
type CreateSeasonRequest struct {
	Year int    `json:"year" binding:"required,min=1900,max=2999"`
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateSeasonRequest 更新季节请求（空值与空串忽略）
type UpdateSeasonRequest struct {
	Year *int    `json:"year" binding:"omitempty,min=1900,max=2999"`
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// SeasonResponse 季节响应
type SeasonResponse struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
