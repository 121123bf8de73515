package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// BoatService 船只业务接口
type BoatService interface {
	Create(ctx context.Context, req *dto.BoatRequest) (*dto.BoatResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.BoatResponse, error)
	List(ctx context.Context, boatType model.BoatType) ([]dto.BoatResponse, error)
	Update(ctx context.Context, id int64, req *dto.BoatRequest) (*dto.BoatResponse, error)
	Delete(ctx context.Context, id int64) error
	PartsByType(ctx context.Context, boatType model.BoatType) ([]string, error)
}

type boatService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBoatService 创建 BoatService 实例
func NewBoatService(repo *repository.Repository, logger *zap.Logger) BoatService {
	return &boatService{repo: repo, logger: logger}
}

func (s *boatService) Create(ctx context.Context, req *dto.BoatRequest) (*dto.BoatResponse, error) {
	boat := &model.Boat{Name: req.Name, Type: req.Type}
	if err := s.repo.Boat.Create(ctx, boat); err != nil {
		s.logger.Error("创建船只失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toBoatResponse(boat), nil
}

func (s *boatService) GetByID(ctx context.Context, id int64) (*dto.BoatResponse, error) {
	boat, err := s.repo.Boat.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBoatNotFound
		}
		s.logger.Error("查询船只失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toBoatResponse(boat), nil
}

func (s *boatService) List(ctx context.Context, boatType model.BoatType) ([]dto.BoatResponse, error) {
	boats, err := s.repo.Boat.List(ctx, boatType)
	if err != nil {
		s.logger.Error("列出船只失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BoatResponse, 0, len(boats))
	for i := range boats {
		result = append(result, *toBoatResponse(&boats[i]))
	}
	return result, nil
}

// Update 整体替换名称与类型
func (s *boatService) Update(ctx context.Context, id int64, req *dto.BoatRequest) (*dto.BoatResponse, error) {
	boat, err := s.repo.Boat.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBoatNotFound
		}
		s.logger.Error("查询船只失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	boat.Name = req.Name
	boat.Type = req.Type
	if err := s.repo.Boat.Update(ctx, boat); err != nil {
		s.logger.Error("更新船只失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toBoatResponse(boat), nil
}

func (s *boatService) Delete(ctx context.Context, id int64) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Boat.GetByID(ctx, id); err != nil {
			return notFoundAs(err, ErrBoatNotFound)
		}
		n, err := tx.Problem.CountByBoat(ctx, id)
		if err != nil {
			s.logger.Error("统计船只故障失败", zap.Int64("id", id), zap.Error(err))
			return err
		}
		if n > 0 {
			return ErrBoatInUse
		}
		return tx.Boat.Delete(ctx, id)
	})
}

// PartsByType 返回某类船只的部件名称（界面下拉选项）
func (s *boatService) PartsByType(ctx context.Context, boatType model.BoatType) ([]string, error) {
	names, err := s.repo.BoatPart.ListNamesByType(ctx, boatType)
	if err != nil {
		s.logger.Error("查询船只部件失败", zap.String("boat_type", string(boatType)), zap.Error(err))
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func toBoatResponse(boat *model.Boat) *dto.BoatResponse {
	return &dto.BoatResponse{
		ID:        boat.ID,
		Name:      boat.Name,
		Type:      boat.Type,
		CreatedAt: formatTime(boat.CreatedAt),
	}
}
