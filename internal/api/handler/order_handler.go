package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandler 采购单模块 HTTP 处理器
type OrderHandler struct {
	orderSvc  service.OrderService
	exportSvc service.ExportService
}

// NewOrderHandler 创建 OrderHandler
func NewOrderHandler(orderSvc service.OrderService, exportSvc service.ExportService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, exportSvc: exportSvc}
}

// ListOrders 采购单列表（过滤 / 排序 / 分页）
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	orders, err := h.orderSvc.List(c.Request.Context(), &query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, orders)
}

// GetOrder 采购单详情
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, order)
}

// CreateOrder 创建采购单
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, order)
}

// UpdateOrder 部分更新采购单
// PUT /api/v1/orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.Update(c.Request.Context(), id, &req, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, order)
}

// DeleteOrder 删除采购单
// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.orderSvc.Delete(c.Request.Context(), id, actor); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// ExportOrders 导出已完成采购单
// GET /api/v1/orders/export
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportOrders(c.Request.Context(), &query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

// ImportOrders 从 Excel 批量导入采购单，字段名 file
// POST /api/v1/orders/import
func (h *OrderHandler) ImportOrders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, codeInvalidParams, "Missing upload field: file")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FromError(c, service.ErrImportBadFile)
		return
	}
	defer file.Close()

	rows, err := service.ParseOrderImportFile(file)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.orderSvc.ImportOrders(c.Request.Context(), rows, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}
