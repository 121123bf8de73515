package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
	exportSvc service.ExportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService, exportSvc service.ExportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc}
}

// SeasonReport 赛季汇总
// GET /api/v1/reports/season/:id
func (h *ReportHandler) SeasonReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reportSvc.SeasonReport(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, report)
}

// ShiftReport 轮次明细
// GET /api/v1/reports/shift/:id
func (h *ReportHandler) ShiftReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reportSvc.ShiftReport(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, report)
}

// ExportSeasonExcel 导出赛季 Excel 报告
// GET /api/v1/reports/season/:id/export-excel
func (h *ReportHandler) ExportSeasonExcel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportSeason(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

// ExportSeasonCalendar 导出赛季轮次日历
// GET /api/v1/reports/season/:id/calendar
func (h *ReportHandler) ExportSeasonCalendar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportSeasonCalendar(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, filename, icsContentType, buf.Bytes())
}
