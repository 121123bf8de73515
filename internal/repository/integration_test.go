//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=lniworks_test sslmode=disable TimeZone=Europe/Rome"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Season{},
		&model.Shift{},
		&model.Boat{},
		&model.BoatPart{},
		&model.Order{},
		&model.Work{},
		&model.BoatProblem{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

type fixture struct {
	user   *model.User
	season *model.Season
	shift  *model.Shift
	boat   *model.Boat
}

// setupFixture 创建用户 / 季节 / 轮次 / 船只并返回清理函数
func setupFixture(t *testing.T) (*fixture, func()) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	user := &model.User{Username: fmt.Sprintf("u%d", suffix), PasswordHash: "x"}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	season := &model.Season{Year: 1000 + int(suffix%8000), Name: "测试季节"}
	if err := testDB.WithContext(ctx).Create(season).Error; err != nil {
		t.Fatalf("创建季节失败: %v", err)
	}
	shift := &model.Shift{
		SeasonID:    season.ID,
		ShiftNumber: 1,
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	if err := testDB.WithContext(ctx).Create(shift).Error; err != nil {
		t.Fatalf("创建轮次失败: %v", err)
	}
	boat := &model.Boat{Name: "Optimist 1", Type: model.BoatTypeOptimist}
	if err := testDB.WithContext(ctx).Create(boat).Error; err != nil {
		t.Fatalf("创建船只失败: %v", err)
	}

	cleanup := func() {
		testDB.Where("shift_id = ?", shift.ID).Delete(&model.BoatProblem{})
		testDB.Where("shift_id = ?", shift.ID).Delete(&model.Order{})
		testDB.Where("shift_id = ?", shift.ID).Delete(&model.Work{})
		testDB.Delete(&model.Boat{}, boat.ID)
		testDB.Where("season_id = ?", season.ID).Delete(&model.Shift{})
		testDB.Delete(&model.Season{}, season.ID)
		testDB.Delete(&model.User{}, user.ID)
	}
	return &fixture{user: user, season: season, shift: shift, boat: boat}, cleanup
}

// ═══════════════════════════════════════════════════════════
// OrderRepository
// ═══════════════════════════════════════════════════════════

func TestOrderRepo_ListPaginationAndSearch(t *testing.T) {
	fx, cleanup := setupFixture(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 25; i++ {
		o := &model.Order{
			Title:     fmt.Sprintf("ordine %02d", i),
			Amount:    decimal.NewFromInt(int64(i)),
			Category:  "Ferramenta",
			Status:    model.StatusCompleted,
			OrderDate: base.AddDate(0, 0, i),
			UserID:    fx.user.ID,
			ShiftID:   fx.shift.ID,
		}
		if i == 7 {
			notes := "Cima di ricambio"
			o.Notes = &notes
		}
		if err := repo.Order.Create(ctx, o); err != nil {
			t.Fatalf("创建采购单失败: %v", err)
		}
	}

	page, err := repo.Order.List(ctx, repository.OrderFilter{
		ShiftIDs: []int64{fx.shift.ID},
		SortBy:   "title",
		Window:   repository.Window{Offset: 10, Limit: 10},
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(page) != 10 || page[0].Title != "ordine 11" || page[9].Title != "ordine 20" {
		t.Errorf("期望 ordine 11..20，实际: %d 条", len(page))
	}

	hits, err := repo.Order.List(ctx, repository.OrderFilter{
		Q:        "RICAMBIO",
		ShiftIDs: []int64{fx.shift.ID},
		Desc:     true,
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "ordine 07" {
		t.Errorf("期望仅命中 ordine 07，实际: %d 条", len(hits))
	}

	minAmount := decimal.NewFromInt(20)
	ranged, err := repo.Order.List(ctx, repository.OrderFilter{
		ShiftIDs:  []int64{fx.shift.ID},
		AmountMin: &minAmount,
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(ranged) != 6 {
		t.Errorf("期望 6 条金额 >= 20 的记录，实际: %d", len(ranged))
	}
}

// ═══════════════════════════════════════════════════════════
// ShiftRepository
// ═══════════════════════════════════════════════════════════

func TestShiftRepo_DuplicateNumberRejected(t *testing.T) {
	fx, cleanup := setupFixture(t)
	defer cleanup()

	dup := &model.Shift{
		SeasonID:    fx.season.ID,
		ShiftNumber: fx.shift.ShiftNumber,
		StartDate:   fx.shift.StartDate,
		EndDate:     fx.shift.EndDate,
	}
	err := repository.NewShiftRepo(testDB).Create(context.Background(), dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("期望 ErrDuplicatedKey，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// ProblemRepository
// ═══════════════════════════════════════════════════════════

func TestProblemRepo_ListPreloadsBoat(t *testing.T) {
	fx, cleanup := setupFixture(t)
	defer cleanup()

	repo := repository.NewProblemRepo(testDB)
	ctx := context.Background()

	p := &model.BoatProblem{
		BoatID:       fx.boat.ID,
		Description:  "Timone rotto",
		Status:       model.ProblemOpen,
		ReportedBy:   fx.user.ID,
		ReportedDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		ShiftID:      fx.shift.ID,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("创建故障失败: %v", err)
	}

	list, err := repo.List(ctx, repository.ProblemFilter{BoatID: fx.boat.ID, Status: string(model.ProblemOpen)})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(list) != 1 || list[0].Boat == nil || list[0].Boat.Name != "Optimist 1" {
		t.Errorf("期望预加载船只信息，实际: %+v", list)
	}

	count, err := repo.CountByBoat(ctx, fx.boat.ID)
	if err != nil || count != 1 {
		t.Errorf("期望故障数 1，实际: %d (%v)", count, err)
	}
}
