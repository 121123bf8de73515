package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/repository"
)

// SeedService 参考数据初始化
type SeedService interface {
	// SeedReferenceData 仅在尚无船只时写入船只与部件，可重复调用
	SeedReferenceData(ctx context.Context) (*dto.SeedResponse, error)
}

type seedService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSeedService 创建 SeedService 实例
func NewSeedService(repo *repository.Repository, logger *zap.Logger) SeedService {
	return &seedService{repo: repo, logger: logger}
}

func (s *seedService) SeedReferenceData(ctx context.Context) (*dto.SeedResponse, error) {
	resp := &dto.SeedResponse{}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		boatCount, err := tx.Boat.Count(ctx)
		if err != nil {
			return err
		}
		if boatCount > 0 {
			resp.Skipped = true
			return nil
		}

		boats := referenceBoats()
		if err := tx.Boat.CreateBatch(ctx, boats); err != nil {
			return err
		}
		resp.Boats = len(boats)

		// 部件表独立判断，避免重复写入
		partCount, err := tx.BoatPart.Count(ctx)
		if err != nil {
			return err
		}
		if partCount == 0 {
			parts := referenceParts()
			if err := tx.BoatPart.CreateBatch(ctx, parts); err != nil {
				return err
			}
			resp.Parts = len(parts)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("初始化参考数据失败", zap.Error(err))
		return nil, err
	}

	if resp.Skipped {
		s.logger.Info("已存在船只数据，跳过初始化")
	} else {
		s.logger.Info("参考数据初始化完成", zap.Int("boats", resp.Boats), zap.Int("parts", resp.Parts))
	}
	return resp, nil
}
