package dto

import "github.com/polidanilo/LNI/internal/model"

// ── 船只模块 DTO ──

// BoatRequest 创建 / 更新船只请求（更新为整体替换）
type BoatRequest struct {
	Name string         `json:"name" binding:"required,max=100"`
	Type model.BoatType `json:"type" binding:"required,boattype"`
}

// BoatListQuery 船只列表筛选
type BoatListQuery struct {
	BoatType model.BoatType `form:"boat_type" binding:"omitempty,boattype"`
}

// BoatResponse 船只响应
type BoatResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Type      model.BoatType `json:"type"`
	CreatedAt string         `json:"created_at"`
}
