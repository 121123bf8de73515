package service

import (
	"github.com/shopspring/decimal"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
)

const monthLayout = "2006-01"

// seasonAggregate 季节报表的精确中间结果（金额为 decimal）
//
// 状态口径：
//   - 总金额、分类金额、工作分类与工作月度计数仅统计 completed
//   - 月度金额统计全部采购单
//   - 各轮次小计统计全部状态
type seasonAggregate struct {
	season *model.Season

	completedAmount decimal.Decimal
	ordersTotal     int
	ordersPending   int
	ordersCompleted int

	worksTotal     int
	worksPending   int
	worksCompleted int

	problemsTotal  int
	problemsOpen   int
	problemsClosed int

	ordersByCategory map[string]decimal.Decimal
	ordersByMonth    map[string]decimal.Decimal
	worksByCategory  map[string]int
	worksByMonth     map[string]int

	shifts []shiftAggregate
}

type shiftAggregate struct {
	shift         model.Shift
	ordersCount   int
	ordersAmount  decimal.Decimal
	worksCount    int
	problemsCount int
}

// aggregateSeason 汇总季节内全部轮次的数据，不修改输入
func aggregateSeason(
	season *model.Season,
	shifts []model.Shift,
	orders []model.Order,
	works []model.Work,
	problems []model.BoatProblem,
) *seasonAggregate {
	agg := &seasonAggregate{
		season:           season,
		completedAmount:  decimal.Zero,
		ordersByCategory: make(map[string]decimal.Decimal),
		ordersByMonth:    make(map[string]decimal.Decimal),
		worksByCategory:  make(map[string]int),
		worksByMonth:     make(map[string]int),
		shifts:           make([]shiftAggregate, len(shifts)),
	}

	shiftIndex := make(map[int64]int, len(shifts))
	for i := range shifts {
		shiftIndex[shifts[i].ID] = i
		agg.shifts[i] = shiftAggregate{shift: shifts[i], ordersAmount: decimal.Zero}
	}

	for i := range orders {
		o := &orders[i]
		agg.ordersTotal++
		switch o.Status {
		case model.StatusPending:
			agg.ordersPending++
		case model.StatusCompleted:
			agg.ordersCompleted++
			agg.completedAmount = agg.completedAmount.Add(o.Amount)
			agg.ordersByCategory[o.Category] = agg.ordersByCategory[o.Category].Add(o.Amount)
		}
		month := o.OrderDate.Format(monthLayout)
		agg.ordersByMonth[month] = agg.ordersByMonth[month].Add(o.Amount)

		if idx, ok := shiftIndex[o.ShiftID]; ok {
			agg.shifts[idx].ordersCount++
			agg.shifts[idx].ordersAmount = agg.shifts[idx].ordersAmount.Add(o.Amount)
		}
	}

	for i := range works {
		w := &works[i]
		agg.worksTotal++
		switch w.Status {
		case model.StatusPending:
			agg.worksPending++
		case model.StatusCompleted:
			agg.worksCompleted++
			agg.worksByCategory[string(w.Category)]++
			agg.worksByMonth[w.WorkDate.Format(monthLayout)]++
		}

		if idx, ok := shiftIndex[w.ShiftID]; ok {
			agg.shifts[idx].worksCount++
		}
	}

	for i := range problems {
		p := &problems[i]
		agg.problemsTotal++
		switch p.Status {
		case model.ProblemOpen:
			agg.problemsOpen++
		case model.ProblemClosed:
			agg.problemsClosed++
		}

		if idx, ok := shiftIndex[p.ShiftID]; ok {
			agg.shifts[idx].problemsCount++
		}
	}

	return agg
}

// toResponse 金额在此处转换为 float64
func (a *seasonAggregate) toResponse() *dto.SeasonReportResponse {
	completedAmount := a.completedAmount.InexactFloat64()

	shiftsData := make([]dto.ShiftSubtotal, 0, len(a.shifts))
	for _, sh := range a.shifts {
		shiftsData = append(shiftsData, dto.ShiftSubtotal{
			ShiftNumber:   sh.shift.ShiftNumber,
			StartDate:     formatDate(sh.shift.StartDate),
			EndDate:       formatDate(sh.shift.EndDate),
			OrdersCount:   sh.ordersCount,
			OrdersAmount:  sh.ordersAmount.InexactFloat64(),
			WorksCount:    sh.worksCount,
			ProblemsCount: sh.problemsCount,
		})
	}

	return &dto.SeasonReportResponse{
		SeasonName:         a.season.Name,
		SeasonYear:         a.season.Year,
		TotalOrdersAmount:  completedAmount,
		TotalOrdersCount:   a.ordersCompleted,
		TotalWorksCount:    a.worksCompleted,
		TotalProblemsCount: a.problemsTotal,
		ShiftsData:         shiftsData,
		OrdersSummary: dto.OrdersSummary{
			TotalAmount:    completedAmount,
			TotalCount:     a.ordersTotal,
			PendingCount:   a.ordersPending,
			CompletedCount: a.ordersCompleted,
		},
		WorksSummary: dto.WorksSummary{
			TotalCount:     a.worksTotal,
			PendingCount:   a.worksPending,
			CompletedCount: a.worksCompleted,
			ByCategory:     copyCounts(a.worksByCategory),
		},
		ProblemsSummary: dto.ProblemsSummary{
			TotalCount:  a.problemsTotal,
			OpenCount:   a.problemsOpen,
			ClosedCount: a.problemsClosed,
		},
		OrdersByCategory: toFloatMap(a.ordersByCategory),
		OrdersByMonth:    toFloatMap(a.ordersByMonth),
		WorksByMonth:     copyCounts(a.worksByMonth),
	}
}

// buildShiftReport 单个轮次的明细与汇总（不区分状态）
func buildShiftReport(
	shift *model.Shift,
	orders []model.Order,
	works []model.Work,
	problems []model.BoatProblem,
) *dto.ShiftReportResponse {
	resp := &dto.ShiftReportResponse{
		ShiftNumber: shift.ShiftNumber,
		StartDate:   formatDate(shift.StartDate),
		EndDate:     formatDate(shift.EndDate),
		Orders:      make([]dto.ShiftReportOrder, 0, len(orders)),
		Works:       make([]dto.ShiftReportWork, 0, len(works)),
		Problems:    make([]dto.ShiftReportProblem, 0, len(problems)),
	}

	total := decimal.Zero
	for i := range orders {
		o := &orders[i]
		total = total.Add(o.Amount)
		resp.Orders = append(resp.Orders, dto.ShiftReportOrder{
			ID:     o.ID,
			Title:  o.Title,
			Amount: o.Amount.InexactFloat64(),
			Status: string(o.Status),
		})
	}
	for i := range works {
		w := &works[i]
		resp.Works = append(resp.Works, dto.ShiftReportWork{
			ID:       w.ID,
			Title:    w.Title,
			Category: string(w.Category),
			Status:   string(w.Status),
		})
	}
	for i := range problems {
		p := &problems[i]
		resp.Problems = append(resp.Problems, dto.ShiftReportProblem{
			ID:     p.ID,
			BoatID: p.BoatID,
			Status: string(p.Status),
		})
	}

	resp.Summary = dto.ShiftReportSummary{
		TotalOrdersAmount:  total.InexactFloat64(),
		TotalOrdersCount:   len(orders),
		TotalWorksCount:    len(works),
		TotalProblemsCount: len(problems),
	}
	return resp
}

// ── 辅助函数 ──

func toFloatMap(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
