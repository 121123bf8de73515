package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// ProblemHandler 船只故障模块 HTTP 处理器
type ProblemHandler struct {
	problemSvc service.ProblemService
}

// NewProblemHandler 创建 ProblemHandler
func NewProblemHandler(problemSvc service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemSvc: problemSvc}
}

// ListProblems 故障列表
// GET /api/v1/problems?boat_id=&status=&shift_id=
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	var query dto.ProblemListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	problems, err := h.problemSvc.List(c.Request.Context(), &query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, problems)
}

// GetProblem 故障详情
// GET /api/v1/problems/:id
func (h *ProblemHandler) GetProblem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	problem, err := h.problemSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, problem)
}

// CreateProblem 上报故障
// POST /api/v1/problems
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	var req dto.CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	problem, err := h.problemSvc.Create(c.Request.Context(), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, problem)
}

// UpdateProblem 部分更新故障
// PUT /api/v1/problems/:id
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	problem, err := h.problemSvc.Update(c.Request.Context(), id, &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, problem)
}

// DeleteProblem 删除故障
// DELETE /api/v1/problems/:id
func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.problemSvc.Delete(c.Request.Context(), id, actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// ToggleStatus 切换故障状态 open <-> closed
// PATCH /api/v1/problems/:id/toggle-status
func (h *ProblemHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.problemSvc.ToggleStatus(c.Request.Context(), id, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}
