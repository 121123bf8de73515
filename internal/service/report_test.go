package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/model"
)

func reportShifts() []model.Shift {
	return []model.Shift{
		{ID: 1, SeasonID: 1, ShiftNumber: 1, StartDate: date(2025, 6, 15), EndDate: date(2025, 6, 28)},
		{ID: 2, SeasonID: 1, ShiftNumber: 2, StartDate: date(2025, 6, 29), EndDate: date(2025, 7, 12)},
	}
}

func reportOrders() []model.Order {
	return []model.Order{
		{ID: 1, Title: "Cime", Amount: decimal.RequireFromString("10.10"), Category: "Ricambi", Status: model.StatusCompleted, OrderDate: date(2025, 6, 16), ShiftID: 1},
		{ID: 2, Title: "Vernice", Amount: decimal.RequireFromString("20.20"), Category: "Manutenzione", Status: model.StatusCompleted, OrderDate: date(2025, 7, 1), ShiftID: 2},
		{ID: 3, Title: "Grasso", Amount: decimal.RequireFromString("5.00"), Category: "Ricambi", Status: model.StatusPending, OrderDate: date(2025, 7, 2), ShiftID: 2},
		{ID: 4, Title: "Nastro", Amount: decimal.RequireFromString("0.10"), Category: "Ricambi", Status: model.StatusCompleted, OrderDate: date(2025, 6, 20), ShiftID: 1},
	}
}

func reportWorks() []model.Work {
	return []model.Work{
		{ID: 1, Title: "Scafo", Category: model.WorkCategoryBarche, Status: model.StatusCompleted, WorkDate: date(2025, 6, 17), ShiftID: 1},
		{ID: 2, Title: "Prato", Category: model.WorkCategoryCampo, Status: model.StatusPending, WorkDate: date(2025, 7, 3), ShiftID: 2},
	}
}

func reportProblems() []model.BoatProblem {
	return []model.BoatProblem{
		{ID: 1, BoatID: 1, Status: model.ProblemOpen, ShiftID: 1},
		{ID: 2, BoatID: 1, Status: model.ProblemClosed, ShiftID: 2},
	}
}

func TestAggregateSeason_Empty(t *testing.T) {
	season := &model.Season{ID: 1, Year: 2025, Name: "Estate 2025"}
	resp := aggregateSeason(season, reportShifts(), nil, nil, nil).toResponse()

	assert.Equal(t, "Estate 2025", resp.SeasonName)
	assert.Equal(t, 2025, resp.SeasonYear)
	assert.Zero(t, resp.TotalOrdersAmount)
	assert.Zero(t, resp.TotalOrdersCount)
	assert.Zero(t, resp.TotalWorksCount)
	assert.Zero(t, resp.TotalProblemsCount)
	assert.NotNil(t, resp.OrdersByCategory)
	assert.NotNil(t, resp.OrdersByMonth)
	assert.NotNil(t, resp.WorksByMonth)
	assert.NotNil(t, resp.WorksSummary.ByCategory)
	require.Len(t, resp.ShiftsData, 2)
	assert.Equal(t, 1, resp.ShiftsData[0].ShiftNumber)
	assert.Zero(t, resp.ShiftsData[1].OrdersCount)
}

func TestAggregateSeason_Totals(t *testing.T) {
	season := &model.Season{ID: 1, Year: 2025, Name: "Estate 2025"}
	resp := aggregateSeason(season, reportShifts(), reportOrders(), reportWorks(), reportProblems()).toResponse()

	// 仅已完成的采购单计入总金额
	assert.Equal(t, 30.4, resp.TotalOrdersAmount)
	assert.Equal(t, 3, resp.TotalOrdersCount)
	assert.Equal(t, 4, resp.OrdersSummary.TotalCount)
	assert.Equal(t, 1, resp.OrdersSummary.PendingCount)
	assert.Equal(t, 3, resp.OrdersSummary.CompletedCount)

	// 分类金额之和等于总金额
	sum := decimal.Zero
	for _, v := range resp.OrdersByCategory {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("30.40")), "分类金额之和: %s", sum)
	assert.Equal(t, 10.2, resp.OrdersByCategory["Ricambi"])

	// 月度金额统计全部状态
	assert.Equal(t, 10.2, resp.OrdersByMonth["2025-06"])
	assert.Equal(t, 25.2, resp.OrdersByMonth["2025-07"])

	// 工作分类与月度只统计已完成
	assert.Equal(t, 1, resp.TotalWorksCount)
	assert.Equal(t, map[string]int{"Barche": 1}, resp.WorksSummary.ByCategory)
	assert.Equal(t, map[string]int{"2025-06": 1}, resp.WorksByMonth)

	assert.Equal(t, 2, resp.TotalProblemsCount)
	assert.Equal(t, 1, resp.ProblemsSummary.OpenCount)
	assert.Equal(t, 1, resp.ProblemsSummary.ClosedCount)

	// 轮次小计包含全部状态
	require.Len(t, resp.ShiftsData, 2)
	assert.Equal(t, 2, resp.ShiftsData[1].OrdersCount)
	assert.Equal(t, 25.2, resp.ShiftsData[1].OrdersAmount)
	assert.Equal(t, 1, resp.ShiftsData[1].WorksCount)
	assert.Equal(t, 1, resp.ShiftsData[0].ProblemsCount)
}

func TestAggregateSeason_Idempotent(t *testing.T) {
	season := &model.Season{ID: 1, Year: 2025, Name: "Estate 2025"}
	orders := reportOrders()

	first := aggregateSeason(season, reportShifts(), orders, reportWorks(), reportProblems()).toResponse()
	second := aggregateSeason(season, reportShifts(), orders, reportWorks(), reportProblems()).toResponse()

	assert.Equal(t, first, second)
	assert.Equal(t, "10.1", orders[0].Amount.String(), "输入不应被修改")
}

func TestBuildShiftReport(t *testing.T) {
	shift := reportShifts()[1]
	var orders []model.Order
	for _, o := range reportOrders() {
		if o.ShiftID == shift.ID {
			orders = append(orders, o)
		}
	}

	resp := buildShiftReport(&shift, orders, nil, nil)

	assert.Equal(t, 2, resp.ShiftNumber)
	assert.Equal(t, "2025-06-29", resp.StartDate)
	assert.Equal(t, 25.2, resp.Summary.TotalOrdersAmount)
	assert.Equal(t, 2, resp.Summary.TotalOrdersCount)
	assert.NotNil(t, resp.Works)
	assert.NotNil(t, resp.Problems)
}

func TestReportService_SeasonWithoutShifts(t *testing.T) {
	repo, mocks := newMockRepository()
	ctx := context.Background()
	season := &model.Season{Year: 2025, Name: "Vuota"}
	require.NoError(t, mocks.seasons.Create(ctx, season))

	svc := NewReportService(repo, zap.NewNop())

	_, err := svc.SeasonReport(ctx, season.ID)
	assert.ErrorIs(t, err, ErrSeasonNoShifts)

	_, err = svc.SeasonReport(ctx, 999)
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	_, err = svc.ShiftReport(ctx, 999)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestReportService_SeasonReport(t *testing.T) {
	repo, mocks := newMockRepository()
	ctx := context.Background()
	season := &model.Season{Year: 2025, Name: "Estate 2025"}
	require.NoError(t, mocks.seasons.Create(ctx, season))
	for _, sh := range reportShifts() {
		sh := sh
		sh.ID = 0
		sh.SeasonID = season.ID
		require.NoError(t, mocks.shifts.Create(ctx, &sh))
	}
	for _, o := range reportOrders() {
		o := o
		o.ID = 0
		require.NoError(t, mocks.orders.Create(ctx, &o))
	}

	resp, err := NewReportService(repo, zap.NewNop()).SeasonReport(ctx, season.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.4, resp.TotalOrdersAmount)
	assert.Len(t, resp.ShiftsData, 2)
}
