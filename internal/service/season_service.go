package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// SeasonService 季节业务接口
type SeasonService interface {
	Create(ctx context.Context, req *dto.CreateSeasonRequest) (*dto.SeasonResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SeasonResponse, error)
	List(ctx context.Context) ([]dto.SeasonResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSeasonRequest) (*dto.SeasonResponse, error)
	Delete(ctx context.Context, id int64) error
}

type seasonService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSeasonService 创建 SeasonService 实例
func NewSeasonService(repo *repository.Repository, logger *zap.Logger) SeasonService {
	return &seasonService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *seasonService) Create(ctx context.Context, req *dto.CreateSeasonRequest) (*dto.SeasonResponse, error) {
	if err := s.ensureYearFree(ctx, req.Year, 0); err != nil {
		return nil, err
	}

	season := &model.Season{Year: req.Year, Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Season.Create(ctx, season); err != nil {
		if isDuplicate(err) {
			return nil, ErrSeasonExists
		}
		s.logger.Error("创建季节失败", zap.Int("year", req.Year), zap.Error(err))
		return nil, err
	}
	return toSeasonResponse(season), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *seasonService) GetByID(ctx context.Context, id int64) (*dto.SeasonResponse, error) {
	season, err := s.repo.Season.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("查询季节失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toSeasonResponse(season), nil
}

// ────────────────────── List ──────────────────────

func (s *seasonService) List(ctx context.Context) ([]dto.SeasonResponse, error) {
	seasons, err := s.repo.Season.List(ctx)
	if err != nil {
		s.logger.Error("列出季节失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SeasonResponse, 0, len(seasons))
	for i := range seasons {
		result = append(result, *toSeasonResponse(&seasons[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *seasonService) Update(ctx context.Context, id int64, req *dto.UpdateSeasonRequest) (*dto.SeasonResponse, error) {
	season, err := s.repo.Season.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("查询季节失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Year != nil && *req.Year != 0 && *req.Year != season.Year {
		if err := s.ensureYearFree(ctx, *req.Year, season.ID); err != nil {
			return nil, err
		}
		season.Year = *req.Year
	}
	patchString(&season.Name, req.Name)

	if err := s.repo.Season.Update(ctx, season); err != nil {
		if isDuplicate(err) {
			return nil, ErrSeasonExists
		}
		s.logger.Error("更新季节失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toSeasonResponse(season), nil
}

// ────────────────────── Delete ──────────────────────

func (s *seasonService) Delete(ctx context.Context, id int64) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Season.GetByID(ctx, id); err != nil {
			return notFoundAs(err, ErrSeasonNotFound)
		}
		count, err := tx.Shift.CountBySeason(ctx, id)
		if err != nil {
			s.logger.Error("统计季节轮次失败", zap.Int64("id", id), zap.Error(err))
			return err
		}
		if count > 0 {
			return ErrSeasonHasShifts
		}
		return tx.Season.Delete(ctx, id)
	})
}

// ── 内部辅助方法 ──

// ensureYearFree 检查年份未被其他季节占用
func (s *seasonService) ensureYearFree(ctx context.Context, year int, selfID int64) error {
	existing, err := s.repo.Season.GetByYear(ctx, year)
	if err == nil && existing.ID != selfID {
		return ErrSeasonExists
	}
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询季节年份失败", zap.Int("year", year), zap.Error(err))
		return err
	}
	return nil
}

func toSeasonResponse(season *model.Season) *dto.SeasonResponse {
	return &dto.SeasonResponse{
		ID:        season.ID,
		Year:      season.Year,
		Name:      season.Name,
		CreatedAt: formatTime(season.CreatedAt),
	}
}
