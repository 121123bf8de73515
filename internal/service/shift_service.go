package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ShiftService 轮次业务接口
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ShiftResponse, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id int64) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if _, err := s.repo.Season.GetByID(ctx, req.SeasonID); err != nil {
		if isNotFound(err) {
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("查询季节失败", zap.Int64("season_id", req.SeasonID), zap.Error(err))
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrShiftDateInvalid
	}

	if err := s.ensureNumberFree(ctx, req.SeasonID, req.ShiftNumber, 0); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		SeasonID:    req.SeasonID,
		ShiftNumber: req.ShiftNumber,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		// 并发创建时由 unique_season_shift_number 约束兜底
		if isDuplicate(err) {
			return nil, ErrShiftDuplicate
		}
		s.logger.Error("创建轮次失败", zap.Int64("season_id", req.SeasonID), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *shiftService) GetByID(ctx context.Context, id int64) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// ────────────────────── ListBySeason ──────────────────────

func (s *shiftService) ListBySeason(ctx context.Context, seasonID int64) ([]dto.ShiftResponse, error) {
	if _, err := s.repo.Season.GetByID(ctx, seasonID); err != nil {
		if isNotFound(err) {
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("查询季节失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	shifts, err := s.repo.Shift.ListBySeason(ctx, seasonID)
	if err != nil {
		s.logger.Error("列出轮次失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, *toShiftResponse(&shifts[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *shiftService) Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.ShiftNumber != nil && *req.ShiftNumber > 0 && *req.ShiftNumber != shift.ShiftNumber {
		if err := s.ensureNumberFree(ctx, shift.SeasonID, *req.ShiftNumber, shift.ID); err != nil {
			return nil, err
		}
		shift.ShiftNumber = *req.ShiftNumber
	}
	if err := patchDate(&shift.StartDate, req.StartDate); err != nil {
		return nil, err
	}
	if err := patchDate(&shift.EndDate, req.EndDate); err != nil {
		return nil, err
	}
	if shift.EndDate.Before(shift.StartDate) {
		return nil, ErrShiftDateInvalid
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		if isDuplicate(err) {
			return nil, ErrShiftDuplicate
		}
		s.logger.Error("更新轮次失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// ────────────────────── Delete ──────────────────────

func (s *shiftService) Delete(ctx context.Context, id int64) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Shift.GetByID(ctx, id); err != nil {
			return notFoundAs(err, ErrShiftNotFound)
		}

		counters := []func(context.Context, int64) (int64, error){
			tx.Order.CountByShift,
			tx.Work.CountByShift,
			tx.Problem.CountByShift,
		}
		for _, count := range counters {
			n, err := count(ctx, id)
			if err != nil {
				s.logger.Error("统计轮次引用失败", zap.Int64("id", id), zap.Error(err))
				return err
			}
			if n > 0 {
				return ErrShiftInUse
			}
		}
		return tx.Shift.Delete(ctx, id)
	})
}

// ── 内部辅助方法 ──

// ensureNumberFree 检查 (season_id, shift_number) 未被其他轮次占用
func (s *shiftService) ensureNumberFree(ctx context.Context, seasonID int64, number int, selfID int64) error {
	existing, err := s.repo.Shift.GetBySeasonAndNumber(ctx, seasonID, number)
	if err == nil && existing.ID != selfID {
		return ErrShiftDuplicate
	}
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询轮次编号失败", zap.Int64("season_id", seasonID), zap.Error(err))
		return err
	}
	return nil
}

func toShiftResponse(shift *model.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:          shift.ID,
		SeasonID:    shift.SeasonID,
		ShiftNumber: shift.ShiftNumber,
		StartDate:   formatDate(shift.StartDate),
		EndDate:     formatDate(shift.EndDate),
		CreatedAt:   formatTime(shift.CreatedAt),
	}
}
