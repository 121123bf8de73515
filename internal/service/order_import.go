package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
)

// ────────────────────── ParseOrderImportFile ──────────────────────

const maxImportRows = 2000

// ImportOrderRow Excel 导入解析后的单行数据（原始文本）
type ImportOrderRow struct {
	Row         int
	Title       string
	Amount      string
	Category    string
	Date        string
	Shift       string
	Status      string
	Description string
	Notes       string
	CreatedBy   string
}

// importColumns 表头别名 -> 字段键
var importColumns = map[string]string{
	"titolo":        "title",
	"title":         "title",
	"importo":       "amount",
	"amount":        "amount",
	"categoria":     "category",
	"category":      "category",
	"data":          "date",
	"data acquisto": "date",
	"date":          "date",
	"order_date":    "date",
	"turno":         "shift",
	"shift_id":      "shift",
	"stato":         "status",
	"status":        "status",
	"descrizione":   "description",
	"appunti":       "description",
	"description":   "description",
	"note":          "notes",
	"notes":         "notes",
	"effettuato da": "created_by",
	"user":          "created_by",
	"created_by":    "created_by",
}

var requiredImportColumns = []string{"title", "amount", "category", "date", "shift"}

// ParseOrderImportFile 解析导入 Excel 文件（首个工作表，第一行为表头）
func ParseOrderImportFile(reader io.Reader) ([]ImportOrderRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, ErrImportBadFile
	}
	defer f.Close()

	excelRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, ErrImportBadFile
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}
	if len(excelRows)-1 > maxImportRows {
		return nil, ErrImportTooManyRows
	}

	colIndex := parseImportHeader(excelRows[0])
	for _, key := range requiredImportColumns {
		if _, ok := colIndex[key]; !ok {
			return nil, ErrImportBadHeader
		}
	}

	var rows []ImportOrderRow
	for i := 1; i < len(excelRows); i++ {
		raw := excelRows[i]
		get := func(key string) string {
			idx, ok := colIndex[key]
			if !ok || idx >= len(raw) {
				return ""
			}
			return strings.TrimSpace(raw[idx])
		}

		item := ImportOrderRow{
			Row:         i + 1,
			Title:       get("title"),
			Amount:      get("amount"),
			Category:    get("category"),
			Date:        get("date"),
			Shift:       get("shift"),
			Status:      get("status"),
			Description: get("description"),
			Notes:       get("notes"),
			CreatedBy:   get("created_by"),
		}

		// 跳过全空行
		if item.Title == "" && item.Amount == "" && item.Category == "" && item.Date == "" && item.Shift == "" {
			continue
		}
		rows = append(rows, item)
	}
	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	return rows, nil
}

// parseImportHeader 解析表头，返回字段键 -> 列索引（支持灵活列序）
func parseImportHeader(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		key, ok := importColumns[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// ────────────────────── ImportOrders ──────────────────────

// ImportOrders 逐行创建采购单，单行失败只计入失败数
func (s *orderService) ImportOrders(ctx context.Context, rows []ImportOrderRow, actor Actor) (*dto.ImportResponse, error) {
	resp := &dto.ImportResponse{Total: len(rows), Errors: []dto.ImportRowError{}}
	knownShifts := make(map[int64]bool)

	fail := func(row int, reason string) {
		resp.Failed++
		resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row, Reason: reason})
	}

	for _, row := range rows {
		order, reason := row.toOrder()
		if reason != "" {
			fail(row.Row, reason)
			continue
		}

		exists, checked := knownShifts[order.ShiftID]
		if !checked {
			if _, err := s.repo.Shift.GetByID(ctx, order.ShiftID); err != nil {
				if !isNotFound(err) {
					s.logger.Error("查询轮次失败", zap.Int64("shift_id", order.ShiftID), zap.Error(err))
					return nil, err
				}
			} else {
				exists = true
			}
			knownShifts[order.ShiftID] = exists
		}
		if !exists {
			fail(row.Row, fmt.Sprintf("shift %d not found", order.ShiftID))
			continue
		}

		order.UserID = actor.ID
		if order.CreatedBy == nil {
			name := actor.Username
			order.CreatedBy = &name
		}
		if err := s.repo.Order.Create(ctx, order); err != nil {
			s.logger.Warn("导入采购单失败", zap.Int("row", row.Row), zap.Error(err))
			fail(row.Row, "database error")
			continue
		}
		resp.Success++
	}

	s.logger.Info("采购单导入完成",
		zap.Int("total", resp.Total),
		zap.Int("success", resp.Success),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

// toOrder 校验并转换单行，失败时返回原因
func (r ImportOrderRow) toOrder() (*model.Order, string) {
	if r.Title == "" || r.Amount == "" || r.Category == "" || r.Date == "" || r.Shift == "" {
		return nil, "missing required field"
	}

	amount, err := parseImportAmount(r.Amount)
	if err != nil || amount.IsNegative() {
		return nil, fmt.Sprintf("invalid amount: %s", r.Amount)
	}
	date, err := parseImportDate(r.Date)
	if err != nil {
		return nil, fmt.Sprintf("invalid date: %s", r.Date)
	}
	shiftID, err := strconv.ParseInt(r.Shift, 10, 64)
	if err != nil || shiftID <= 0 {
		return nil, fmt.Sprintf("invalid shift: %s", r.Shift)
	}

	status := model.Status(strings.ToLower(r.Status))
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Sprintf("invalid status: %s", r.Status)
	}

	order := &model.Order{
		Title:     r.Title,
		Amount:    amount.Round(2),
		Category:  r.Category,
		Status:    status,
		OrderDate: date,
		ShiftID:   shiftID,
	}
	if r.Description != "" {
		v := r.Description
		order.Description = &v
	}
	if r.Notes != "" {
		v := r.Notes
		order.Notes = &v
	}
	if r.CreatedBy != "" {
		v := r.CreatedBy
		order.CreatedBy = &v
	}
	return order, ""
}

// parseImportAmount 支持 "€ 12,50" / "12.50"
func parseImportAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "€"))
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// parseImportDate 支持 2025-06-15 与 15/06/2025
func parseImportDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", s)
}
