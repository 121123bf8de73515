package dto

import "github.com/polidanilo/LNI/internal/model"

// ── 维护工作模块 DTO ──

// CreateWorkRequest 创建维护工作请求
type CreateWorkRequest struct {
	Title       string             `json:"title"       binding:"required,max=255"`
	Description *string            `json:"description"`
	Category    model.WorkCategory `json:"category"    binding:"required,workcategory"`
	Status      model.Status       `json:"status"      binding:"omitempty,orderstatus"`
	WorkDate    string             `json:"work_date"   binding:"required"`
	ShiftID     int64              `json:"shift_id"    binding:"required,min=1"`
}

// UpdateWorkRequest 更新维护工作请求
type UpdateWorkRequest struct {
	Title       *string             `json:"title"       binding:"omitempty,max=255"`
	Description *string             `json:"description"`
	Category    *model.WorkCategory `json:"category"    binding:"omitempty,workcategory"`
	Status      *model.Status       `json:"status"      binding:"omitempty,orderstatus"`
	WorkDate    *string             `json:"work_date"`
	ShiftID     *int64              `json:"shift_id"`
	UserID      *int64              `json:"user_id"     binding:"omitempty,min=1"`
}

// WorkListQuery 维护工作列表 / 导出筛选
type WorkListQuery struct {
	Q        string `form:"q"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Category string `form:"category" binding:"omitempty,workcategory"`
	Status   string `form:"status"   binding:"omitempty,orderstatus"`
	ShiftID  int64  `form:"shift_id"`
	ShiftIDs string `form:"shift_ids"`
	Sorting
	Pagination
}

// WorkResponse 维护工作响应
// CreatedBy 为所属用户的用户名
type WorkResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Category    model.WorkCategory `json:"category"`
	Status      model.Status       `json:"status"`
	WorkDate    string             `json:"work_date"`
	UserID      int64              `json:"user_id"`
	ShiftID     int64              `json:"shift_id"`
	CreatedBy   *string            `json:"created_by"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}
