package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ExportService 文件导出业务接口，返回文件内容与下载文件名
type ExportService interface {
	// ExportOrders 仅导出已完成采购单，按轮次分组
	ExportOrders(ctx context.Context, query *dto.OrderListQuery) (*bytes.Buffer, string, error)
	ExportWorks(ctx context.Context, query *dto.WorkListQuery) (*bytes.Buffer, string, error)
	ExportSeason(ctx context.Context, seasonID int64) (*bytes.Buffer, string, error)
	// ExportSeasonCalendar 每个轮次一个全天事件
	ExportSeasonCalendar(ctx context.Context, seasonID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

const (
	ordersExportFile = "LNIspent.xlsx"
	worksExportFile  = "works.xlsx"

	colorEmerald = "#10B981"
	colorBlue    = "#4472C4"
	colorWhite   = "#FFFFFF"

	// 轮次分组标题行着色的列数（A-M）
	groupHeaderCols = 13
)

// ────────────────────── ExportOrders ──────────────────────

func (s *exportService) ExportOrders(ctx context.Context, query *dto.OrderListQuery) (*bytes.Buffer, string, error) {
	filter, err := buildOrderFilter(query)
	if err != nil {
		return nil, "", err
	}
	filter.Status = string(model.StatusCompleted)
	filter.GroupByShift = true

	orders, err := s.repo.Order.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询导出采购单失败", zap.Error(err))
		return nil, "", err
	}

	shiftNames, err := s.shiftNames(ctx, orders)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Acquisti"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorder(),
	})
	groupStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: colorWhite},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorEmerald}, Pattern: 1},
	})

	headers := []string{"Turno", "Titolo", "Importo", "User", "Categoria", "Note", "Data"}
	writeRow(f, sheet, 1, toAny(headers))
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	var currentShift int64
	for i := range orders {
		o := &orders[i]
		if i == 0 || o.ShiftID != currentShift {
			// 除第一组外，每组前插入空行
			if i > 0 {
				row++
			}
			currentShift = o.ShiftID
			name, ok := shiftNames[o.ShiftID]
			if !ok {
				name = fmt.Sprintf("Turno %d", o.ShiftID)
			}
			f.SetCellValue(sheet, cell("A", row), name)
			f.SetCellStyle(sheet, cell("A", row), cell(colName(groupHeaderCols-1), row), groupStyle)
			row++
		}

		writeRow(f, sheet, row, []interface{}{
			"",
			o.Title,
			formatEuro(o.Amount),
			derefString(o.CreatedBy),
			o.Category,
			joinNotes(o.Description, o.Notes),
			o.OrderDate.Format("02/01/2006"),
		})
		row++
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "E", 16)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "G", "G", 12)

	buf, err := s.write(f)
	if err != nil {
		return nil, "", err
	}
	return buf, ordersExportFile, nil
}

// shiftNames 轮次 ID -> 序号显示名
func (s *exportService) shiftNames(ctx context.Context, orders []model.Order) (map[int64]string, error) {
	seen := make(map[int64]bool)
	var ids []int64
	for i := range orders {
		if !seen[orders[i].ShiftID] {
			seen[orders[i].ShiftID] = true
			ids = append(ids, orders[i].ShiftID)
		}
	}

	shifts, err := s.repo.Shift.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询导出轮次失败", zap.Error(err))
		return nil, err
	}
	names := make(map[int64]string, len(shifts))
	for i := range shifts {
		names[shifts[i].ID] = ShiftOrdinalName(shifts[i].ShiftNumber)
	}
	return names, nil
}

// ────────────────────── ExportWorks ──────────────────────

func (s *exportService) ExportWorks(ctx context.Context, query *dto.WorkListQuery) (*bytes.Buffer, string, error) {
	filter, err := buildWorkFilter(query)
	if err != nil {
		return nil, "", err
	}

	works, err := s.repo.Work.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询导出维护工作失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Works"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	headers := []string{"ID", "Titolo", "Descrizione", "Categoria", "Stato", "Data lavoro", "Creato il", "Aggiornato il", "Shift ID", "User ID"}
	writeRow(f, sheet, 1, toAny(headers))
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Border: thinBorder()})
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	for i := range works {
		w := &works[i]
		writeRow(f, sheet, i+2, []interface{}{
			w.ID,
			w.Title,
			derefString(w.Description),
			string(w.Category),
			string(w.Status),
			formatDate(w.WorkDate),
			w.CreatedAt.Format("2006-01-02 15:04:05"),
			w.UpdatedAt.Format("2006-01-02 15:04:05"),
			w.ShiftID,
			w.UserID,
		})
	}

	buf, err := s.write(f)
	if err != nil {
		return nil, "", err
	}
	return buf, worksExportFile, nil
}

// ────────────────────── ExportSeason ──────────────────────

func (s *exportService) ExportSeason(ctx context.Context, seasonID int64) (*bytes.Buffer, string, error) {
	data, err := loadSeasonData(ctx, s.repo, s.logger, seasonID)
	if err != nil {
		return nil, "", err
	}

	shiftNumbers := make(map[int64]int, len(data.shifts))
	for i := range data.shifts {
		shiftNumbers[data.shifts[i].ID] = data.shifts[i].ShiftNumber
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorWhite},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorBlue}, Pattern: 1},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{Border: thinBorder()})

	// 1. Acquisti：全部采购单
	const ordersSheet = "Acquisti"
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, "", err
	}
	orderHeaders := []string{"Titolo", "Importo", "Data Acquisto", "Categoria", "Appunti", "Effettuato Da", "Turno", "Status"}
	writeRow(f, ordersSheet, 1, toAny(orderHeaders))
	f.SetCellStyle(ordersSheet, "A1", cell(colName(len(orderHeaders)-1), 1), headerStyle)
	for i := range data.orders {
		o := &data.orders[i]
		user := "Unknown"
		if o.User != nil {
			user = o.User.Username
		}
		row := i + 2
		writeRow(f, ordersSheet, row, []interface{}{
			o.Title,
			o.Amount.InexactFloat64(),
			formatDate(o.OrderDate),
			o.Category,
			derefString(o.Description),
			user,
			fmt.Sprintf("Turno %d", shiftNumbers[o.ShiftID]),
			string(o.Status),
		})
		f.SetCellStyle(ordersSheet, cell("A", row), cell(colName(len(orderHeaders)-1), row), bodyStyle)
	}
	setColWidths(f, ordersSheet, []float64{30, 12, 15, 15, 25, 15, 12, 12})

	// 2. Lavori：全部维护工作
	const worksSheet = "Lavori"
	if _, err := f.NewSheet(worksSheet); err != nil {
		return nil, "", err
	}
	workHeaders := []string{"Titolo", "Categoria", "Data Lavoro", "Stato", "Turno", "Creato il"}
	writeRow(f, worksSheet, 1, toAny(workHeaders))
	f.SetCellStyle(worksSheet, "A1", cell(colName(len(workHeaders)-1), 1), headerStyle)
	for i := range data.works {
		w := &data.works[i]
		row := i + 2
		writeRow(f, worksSheet, row, []interface{}{
			w.Title,
			string(w.Category),
			formatDate(w.WorkDate),
			string(w.Status),
			fmt.Sprintf("Turno %d", shiftNumbers[w.ShiftID]),
			w.CreatedAt.Format("2006-01-02T15:04:05"),
		})
		f.SetCellStyle(worksSheet, cell("A", row), cell(colName(len(workHeaders)-1), row), bodyStyle)
	}
	setColWidths(f, worksSheet, []float64{30, 15, 15, 12, 12, 20})

	// 3. Riepilogo：分类金额 / 月度金额 / 月度工作数（全部记录）
	if err := s.writeSeasonSummary(f, data); err != nil {
		return nil, "", err
	}

	buf, err := s.write(f)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("Resoconto_%s_%s.xlsx", data.season.Name, s.now().Format("20060102_150405"))
	return buf, filename, nil
}

func (s *exportService) writeSeasonSummary(f *excelize.File, data *seasonData) error {
	const sheet = "Riepilogo"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	byCategory := make(map[string]decimal.Decimal)
	byMonth := make(map[string]decimal.Decimal)
	worksByMonth := make(map[string]int)
	for i := range data.orders {
		o := &data.orders[i]
		byCategory[o.Category] = byCategory[o.Category].Add(o.Amount)
		month := o.OrderDate.Format(monthLayout)
		byMonth[month] = byMonth[month].Add(o.Amount)
	}
	for i := range data.works {
		worksByMonth[data.works[i].WorkDate.Format(monthLayout)]++
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Resoconto Stagione %s (%d)", data.season.Name, data.season.Year))
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	row := 3
	section := func(title, keyHeader, valueHeader string, keys []string, value func(string) interface{}) {
		f.SetCellValue(sheet, cell("A", row), title)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), boldStyle)
		row++
		writeRow(f, sheet, row, []interface{}{keyHeader, valueHeader})
		row++
		for _, k := range keys {
			writeRow(f, sheet, row, []interface{}{k, value(k)})
			row++
		}
		row++
	}

	section("Spese per Categoria", "Categoria", "Importo", sortedKeys(byCategory), func(k string) interface{} {
		return byCategory[k].InexactFloat64()
	})
	section("Spese per Mese", "Mese", "Importo", sortedKeys(byMonth), func(k string) interface{} {
		return byMonth[k].InexactFloat64()
	})
	section("Lavori per Mese", "Mese", "# Lavori", sortedKeys(worksByMonth), func(k string) interface{} {
		return worksByMonth[k]
	})

	setColWidths(f, sheet, []float64{25, 15})
	return nil
}

// ────────────────────── ExportSeasonCalendar ──────────────────────

func (s *exportService) ExportSeasonCalendar(ctx context.Context, seasonID int64) (*bytes.Buffer, string, error) {
	season, err := s.repo.Season.GetByID(ctx, seasonID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrSeasonNotFound
		}
		s.logger.Error("查询季节失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, "", err
	}
	shifts, err := s.repo.Shift.ListBySeason(ctx, seasonID)
	if err != nil {
		s.logger.Error("查询季节轮次失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrSeasonNoShifts
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//LNI Works//Turni//IT")
	cal.SetXWRCalName(fmt.Sprintf("Turni %s", season.Name))

	stamp := s.now().UTC()
	for i := range shifts {
		sh := &shifts[i]
		event := cal.AddEvent(fmt.Sprintf("lni-shift-%d@lniworks", sh.ID))
		event.SetDtStampTime(stamp)
		event.SetSummary(fmt.Sprintf("%s turno - %s", ShiftOrdinalName(sh.ShiftNumber), season.Name))
		event.SetAllDayStartAt(sh.StartDate)
		// DTEND 全天事件不含当天
		event.SetAllDayEndAt(sh.EndDate.AddDate(0, 0, 1))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("turni_%s.ics", strings.ReplaceAll(season.Name, " ", "_"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func (s *exportService) write(f *excelize.File) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, err
	}
	return buf, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		f.SetCellValue(sheet, cell(colName(i), row), v)
	}
}

func setColWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheet, col, col, w)
	}
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func formatEuro(amount decimal.Decimal) string {
	return "€ " + amount.StringFixed(2)
}

// joinNotes 描述与备注以 " | " 连接，缺失的一方省略
func joinNotes(description, notes *string) string {
	var parts []string
	if v := derefString(description); v != "" {
		parts = append(parts, v)
	}
	if v := derefString(notes); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, " | ")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
