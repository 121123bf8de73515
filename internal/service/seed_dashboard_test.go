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

func TestSeedService_Idempotent(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewSeedService(repo, zap.NewNop())
	ctx := context.Background()

	first, err := svc.SeedReferenceData(ctx)
	require.NoError(t, err)
	assert.False(t, first.Skipped)
	assert.Equal(t, len(referenceBoats()), first.Boats)
	assert.Equal(t, len(referenceParts()), first.Parts)

	second, err := svc.SeedReferenceData(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Len(t, mocks.boats.boats, first.Boats)
}

func TestReferenceData_Consistent(t *testing.T) {
	names := make(map[string]bool)
	for _, b := range referenceBoats() {
		assert.True(t, b.Type.Valid(), "非法船只类型: %s", b.Type)
		key := string(b.Type) + "/" + b.Name
		assert.False(t, names[key], "重复船只: %s", key)
		names[key] = true
	}
	for _, p := range referenceParts() {
		assert.True(t, p.BoatType.Valid(), "非法部件类型: %s", p.BoatType)
		assert.NotEmpty(t, p.PartName)
	}
}

func TestBoatService_PartsByType(t *testing.T) {
	repo, _ := newMockRepository()
	ctx := context.Background()
	_, err := NewSeedService(repo, zap.NewNop()).SeedReferenceData(ctx)
	require.NoError(t, err)

	svc := NewBoatService(repo, zap.NewNop())
	parts, err := svc.PartsByType(ctx, model.BoatTypeOptimist)
	require.NoError(t, err)
	assert.NotEmpty(t, parts)

	none, err := svc.PartsByType(ctx, model.BoatTypeCanoe)
	require.NoError(t, err)
	assert.NotNil(t, none)
}

func TestBoatService_DeleteWithProblems(t *testing.T) {
	repo, mocks := newMockRepository()
	ctx := context.Background()
	boat := &model.Boat{Name: "Alpha", Type: model.BoatTypeFly}
	require.NoError(t, mocks.boats.Create(ctx, boat))
	require.NoError(t, mocks.problems.Create(ctx, &model.BoatProblem{BoatID: boat.ID, Description: "x", Status: model.ProblemOpen}))

	svc := NewBoatService(repo, zap.NewNop())
	assert.ErrorIs(t, svc.Delete(ctx, boat.ID), ErrBoatInUse)
	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrBoatNotFound)
}

func TestDashboardService_Home(t *testing.T) {
	repo, mocks := newMockRepository()
	ctx := context.Background()

	boat := &model.Boat{Name: "Bravo", Type: model.BoatTypeEquipe}
	require.NoError(t, mocks.boats.Create(ctx, boat))
	for i := 0; i < 7; i++ {
		status := model.StatusCompleted
		if i%3 == 0 {
			status = model.StatusPending
		}
		require.NoError(t, mocks.orders.Create(ctx, &model.Order{
			Title: "o", Amount: decimal.NewFromInt(int64(i)), Status: status, OrderDate: date(2025, 6, 1+i), ShiftID: 1,
		}))
	}
	require.NoError(t, mocks.works.Create(ctx, &model.Work{Title: "w", Status: model.StatusPending, WorkDate: date(2025, 6, 2), ShiftID: 1}))
	require.NoError(t, mocks.problems.Create(ctx, &model.BoatProblem{BoatID: boat.ID, Description: "p", Status: model.ProblemOpen, ReportedDate: date(2025, 6, 3)}))
	require.NoError(t, mocks.problems.Create(ctx, &model.BoatProblem{BoatID: boat.ID, Description: "q", Status: model.ProblemClosed, ReportedDate: date(2025, 6, 4)}))

	resp, err := NewDashboardService(repo, zap.NewNop()).Home(ctx)
	require.NoError(t, err)

	assert.Len(t, resp.RecentCompletedOrders, 4)
	assert.Empty(t, resp.RecentCompletedWorks)
	assert.NotNil(t, resp.RecentCompletedWorks)
	require.Len(t, resp.OpenProblems, 1)
	assert.Equal(t, "Bravo", resp.OpenProblems[0].BoatName)
	assert.Equal(t, int64(1), resp.Summary.TotalOpenProblems)
	assert.Equal(t, int64(3), resp.Summary.TotalPendingOrders)
	assert.Equal(t, int64(1), resp.Summary.TotalPendingWorks)
}
