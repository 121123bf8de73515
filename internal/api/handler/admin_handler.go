package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// AdminHandler 管理操作，路由层由 X-Admin-Secret 保护
type AdminHandler struct {
	seedSvc service.SeedService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(seedSvc service.SeedService) *AdminHandler {
	return &AdminHandler{seedSvc: seedSvc}
}

// Seed 写入船只与部件参考数据
// POST /api/v1/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	result, err := h.seedSvc.SeedReferenceData(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}
