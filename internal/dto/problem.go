package dto

import "github.com/polidanilo/LNI/internal/model"

// ── 船只故障模块 DTO ──

// CreateProblemRequest 上报故障请求
type CreateProblemRequest struct {
	BoatID       int64               `json:"boat_id"       binding:"required,min=1"`
	Description  string              `json:"description"   binding:"required"`
	PartAffected *string             `json:"part_affected" binding:"omitempty,max=100"`
	Status       model.ProblemStatus `json:"status"        binding:"omitempty,problemstatus"`
	ReportedDate string              `json:"reported_date"` // 为空时取当天
	ShiftID      int64               `json:"shift_id"      binding:"required,min=1"`
}

// UpdateProblemRequest 更新故障请求
type UpdateProblemRequest struct {
	Description  *string              `json:"description"`
	PartAffected *string              `json:"part_affected" binding:"omitempty,max=100"`
	Status       *model.ProblemStatus `json:"status"        binding:"omitempty,problemstatus"`
	ReportedDate *string              `json:"reported_date"`
	ReportedBy   *int64               `json:"reported_by"   binding:"omitempty,min=1"`
	ResolvedDate *string              `json:"resolved_date"`
}

// ProblemListQuery 故障列表筛选
type ProblemListQuery struct {
	BoatID  int64  `form:"boat_id"`
	Status  string `form:"status"   binding:"omitempty,problemstatus"`
	ShiftID int64  `form:"shift_id"`
}

// ProblemResponse 故障响应（附带船只名称与类型）
type ProblemResponse struct {
	ID           int64               `json:"id"`
	BoatID       int64               `json:"boat_id"`
	BoatName     *string             `json:"boat_name"`
	BoatType     *model.BoatType     `json:"boat_type"`
	Description  string              `json:"description"`
	PartAffected *string             `json:"part_affected"`
	Status       model.ProblemStatus `json:"status"`
	ReportedBy   int64               `json:"reported_by"`
	ReportedDate string              `json:"reported_date"`
	ResolvedDate *string             `json:"resolved_date"`
	ShiftID      int64               `json:"shift_id"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// ToggleProblemResponse 切换状态结果
type ToggleProblemResponse struct {
	Status       model.ProblemStatus `json:"status"`
	ResolvedDate *string             `json:"resolved_date"`
}
