package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/polidanilo/LNI/internal/model"
)

// SeasonRepository 季节数据访问接口
type SeasonRepository interface {
	Create(ctx context.Context, season *model.Season) error
	GetByID(ctx context.Context, id int64) (*model.Season, error)
	GetByYear(ctx context.Context, year int) (*model.Season, error)
	List(ctx context.Context) ([]model.Season, error)
	Update(ctx context.Context, season *model.Season) error
	Delete(ctx context.Context, id int64) error
}

type seasonRepo struct {
	db *gorm.DB
}

// NewSeasonRepo 创建 SeasonRepository 实例
func NewSeasonRepo(db *gorm.DB) SeasonRepository {
	return &seasonRepo{db: db}
}

func (r *seasonRepo) Create(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *seasonRepo) GetByID(ctx context.Context, id int64) (*model.Season, error) {
	var season model.Season
	if err := r.db.WithContext(ctx).First(&season, id).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepo) GetByYear(ctx context.Context, year int) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		First(&season).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepo) List(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepo) Update(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Omit("Shifts").Save(season).Error
}

func (r *seasonRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Season{}, id).Error
}
