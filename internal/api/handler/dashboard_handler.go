package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// DashboardHandler 首页概览
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Home 首页数据
// GET /api/v1/dashboard/home
func (h *DashboardHandler) Home(c *gin.Context) {
	home, err := h.dashboardSvc.Home(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, home)
}
