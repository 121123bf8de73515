package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// SeasonHandler 赛季模块 HTTP 处理器
type SeasonHandler struct {
	seasonSvc service.SeasonService
}

// NewSeasonHandler 创建 SeasonHandler
func NewSeasonHandler(seasonSvc service.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonSvc: seasonSvc}
}

// ListSeasons 赛季列表（按年份倒序）
// GET /api/v1/seasons
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	seasons, err := h.seasonSvc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, seasons)
}

// GetSeason 赛季详情
// GET /api/v1/seasons/:id
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	season, err := h.seasonSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, season)
}

// CreateSeason 创建赛季
// POST /api/v1/seasons
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req dto.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	season, err := h.seasonSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, season)
}

// UpdateSeason 更新赛季
// PUT /api/v1/seasons/:id
func (h *SeasonHandler) UpdateSeason(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	season, err := h.seasonSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, season)
}

// DeleteSeason 删除赛季
// DELETE /api/v1/seasons/:id
func (h *SeasonHandler) DeleteSeason(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.seasonSvc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}
