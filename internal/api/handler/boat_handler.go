package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// BoatHandler 船只模块 HTTP 处理器
type BoatHandler struct {
	boatSvc service.BoatService
}

// NewBoatHandler 创建 BoatHandler
func NewBoatHandler(boatSvc service.BoatService) *BoatHandler {
	return &BoatHandler{boatSvc: boatSvc}
}

// ListBoats 船只列表，可按类型过滤
// GET /api/v1/boats?boat_type=Optimist
func (h *BoatHandler) ListBoats(c *gin.Context) {
	var query dto.BoatListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	boats, err := h.boatSvc.List(c.Request.Context(), query.BoatType)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, boats)
}

// GetBoat 船只详情
// GET /api/v1/boats/:id
func (h *BoatHandler) GetBoat(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	boat, err := h.boatSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, boat)
}

// CreateBoat 创建船只
// POST /api/v1/boats
func (h *BoatHandler) CreateBoat(c *gin.Context) {
	var req dto.BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	boat, err := h.boatSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, boat)
}

// UpdateBoat 更新船只（名称与类型整体替换）
// PUT /api/v1/boats/:id
func (h *BoatHandler) UpdateBoat(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	boat, err := h.boatSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, boat)
}

// DeleteBoat 删除船只
// DELETE /api/v1/boats/:id
func (h *BoatHandler) DeleteBoat(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.boatSvc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// PartsByType 某类船只的部件名称
// GET /api/v1/boats/type/:boat_type/parts
func (h *BoatHandler) PartsByType(c *gin.Context) {
	boatType := model.BoatType(c.Param("boat_type"))
	if !boatType.Valid() {
		response.BadRequest(c, codeInvalidParams, "Invalid boat_type")
		return
	}

	parts, err := h.boatSvc.PartsByType(c.Request.Context(), boatType)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, parts)
}
