package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ReportService 季节 / 轮次报表业务接口（只读）
type ReportService interface {
	SeasonReport(ctx context.Context, seasonID int64) (*dto.SeasonReportResponse, error)
	ShiftReport(ctx context.Context, shiftID int64) (*dto.ShiftReportResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// seasonData 季节报表与季节导出共用的原始数据
type seasonData struct {
	season   *model.Season
	shifts   []model.Shift
	orders   []model.Order
	works    []model.Work
	problems []model.BoatProblem
}

// loadSeasonData 季节不存在返回 ErrSeasonNotFound，无轮次返回 ErrSeasonNoShifts
func loadSeasonData(ctx context.Context, repo *repository.Repository, logger *zap.Logger, seasonID int64) (*seasonData, error) {
	season, err := repo.Season.GetByID(ctx, seasonID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSeasonNotFound
		}
		logger.Error("查询季节失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	shifts, err := repo.Shift.ListBySeason(ctx, seasonID)
	if err != nil {
		logger.Error("查询季节轮次失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, ErrSeasonNoShifts
	}

	shiftIDs := make([]int64, 0, len(shifts))
	for i := range shifts {
		shiftIDs = append(shiftIDs, shifts[i].ID)
	}

	data := &seasonData{season: season, shifts: shifts}
	if data.orders, err = repo.Order.ListByShiftIDs(ctx, shiftIDs); err != nil {
		logger.Error("查询季节采购单失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}
	if data.works, err = repo.Work.ListByShiftIDs(ctx, shiftIDs); err != nil {
		logger.Error("查询季节维护工作失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}
	if data.problems, err = repo.Problem.ListByShiftIDs(ctx, shiftIDs); err != nil {
		logger.Error("查询季节故障失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// ────────────────────── SeasonReport ──────────────────────

func (s *reportService) SeasonReport(ctx context.Context, seasonID int64) (*dto.SeasonReportResponse, error) {
	data, err := loadSeasonData(ctx, s.repo, s.logger, seasonID)
	if err != nil {
		return nil, err
	}
	agg := aggregateSeason(data.season, data.shifts, data.orders, data.works, data.problems)
	return agg.toResponse(), nil
}

// ────────────────────── ShiftReport ──────────────────────

func (s *reportService) ShiftReport(ctx context.Context, shiftID int64) (*dto.ShiftReportResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("shift_id", shiftID), zap.Error(err))
		return nil, err
	}

	ids := []int64{shiftID}
	orders, err := s.repo.Order.ListByShiftIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询轮次采购单失败", zap.Int64("shift_id", shiftID), zap.Error(err))
		return nil, err
	}
	works, err := s.repo.Work.ListByShiftIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询轮次维护工作失败", zap.Int64("shift_id", shiftID), zap.Error(err))
		return nil, err
	}
	problems, err := s.repo.Problem.ListByShiftIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询轮次故障失败", zap.Int64("shift_id", shiftID), zap.Error(err))
		return nil, err
	}

	return buildShiftReport(shift, orders, works, problems), nil
}
