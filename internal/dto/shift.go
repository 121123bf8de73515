package dto

// ── 轮次模块 DTO ──

// CreateShiftRequest 创建轮次请求
type CreateShiftRequest struct {
	SeasonID    int64  `json:"season_id"    binding:"required,min=1"`
	ShiftNumber int    `json:"shift_number" binding:"required,min=1"`
	StartDate   string `json:"start_date"   binding:"required"` // "2025-06-15"
	EndDate     string `json:"end_date"     binding:"required"`
}

// UpdateShiftRequest 更新轮次请求
type UpdateShiftRequest struct {
	ShiftNumber *int    `json:"shift_number" binding:"omitempty,min=1"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// ShiftResponse 轮次响应
type ShiftResponse struct {
	ID          int64  `json:"id"`
	SeasonID    int64  `json:"season_id"`
	ShiftNumber int    `json:"shift_number"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedAt   string `json:"created_at"`
}
