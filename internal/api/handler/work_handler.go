package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// WorkHandler 维护工作模块 HTTP 处理器
type WorkHandler struct {
	workSvc   service.WorkService
	exportSvc service.ExportService
}

// NewWorkHandler 创建 WorkHandler
func NewWorkHandler(workSvc service.WorkService, exportSvc service.ExportService) *WorkHandler {
	return &WorkHandler{workSvc: workSvc, exportSvc: exportSvc}
}

// ListWorks 维护工作列表
// GET /api/v1/works
func (h *WorkHandler) ListWorks(c *gin.Context) {
	var query dto.WorkListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	works, err := h.workSvc.List(c.Request.Context(), &query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, works)
}

// GetWork 维护工作详情
// GET /api/v1/works/:id
func (h *WorkHandler) GetWork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	work, err := h.workSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, work)
}

// CreateWork 创建维护工作
// POST /api/v1/works
func (h *WorkHandler) CreateWork(c *gin.Context) {
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	work, err := h.workSvc.Create(c.Request.Context(), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, work)
}

// UpdateWork 部分更新维护工作
// PUT /api/v1/works/:id
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	work, err := h.workSvc.Update(c.Request.Context(), id, &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, work)
}

// DeleteWork 删除维护工作
// DELETE /api/v1/works/:id
func (h *WorkHandler) DeleteWork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.workSvc.Delete(c.Request.Context(), id, actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// ExportWorks 按列表过滤条件导出（不分页）
// GET /api/v1/works/export
func (h *WorkHandler) ExportWorks(c *gin.Context) {
	var query dto.WorkListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportWorks(c.Request.Context(), &query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}
