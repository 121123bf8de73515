package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polidanilo/LNI/internal/model"
)

// ── 采购单模块 DTO ──

// CreateOrderRequest 创建采购单请求
type CreateOrderRequest struct {
	Title       string          `json:"title"       binding:"required,max=255"`
	Description *string         `json:"description"`
	Notes       *string         `json:"notes"`
	CreatedBy   *string         `json:"created_by"  binding:"omitempty,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"    binding:"required,max=100"`
	Status      model.Status    `json:"status"      binding:"omitempty,orderstatus"`
	OrderDate   string          `json:"order_date"  binding:"required"`
	ShiftID     int64           `json:"shift_id"    binding:"required,min=1"`
}

// UpdateOrderRequest 更新采购单请求（nil 与空串忽略）
type UpdateOrderRequest struct {
	Title       *string          `json:"title"       binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
	CreatedBy   *string          `json:"created_by"  binding:"omitempty,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"    binding:"omitempty,max=100"`
	Status      *model.Status    `json:"status"      binding:"omitempty,orderstatus"`
	OrderDate   *string          `json:"order_date"`
	ShiftID     *int64           `json:"shift_id"`
	UserID      *int64           `json:"user_id"`
}

// OrderListQuery 采购单列表 / 导出筛选
// shift_ids 为逗号分隔列表，同时给出时优先于 shift_id
type OrderListQuery struct {
	Q         string   `form:"q"`
	DateFrom  string   `form:"date_from"`
	DateTo    string   `form:"date_to"`
	Category  string   `form:"category"`
	Status    string   `form:"status" binding:"omitempty,orderstatus"`
	ShiftID   int64    `form:"shift_id"`
	ShiftIDs  string   `form:"shift_ids"`
	AmountMin *float64 `form:"amount_min"`
	AmountMax *float64 `form:"amount_max"`
	Sorting
	Pagination
}

// OrderResponse 采购单响应
type OrderResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Notes       *string      `json:"notes"`
	CreatedBy   *string      `json:"created_by"`
	Amount      float64      `json:"amount"`
	Category    string       `json:"category"`
	Status      model.Status `json:"status"`
	OrderDate   string       `json:"order_date"`
	UserID      int64        `json:"user_id"`
	ShiftID     int64        `json:"shift_id"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}
