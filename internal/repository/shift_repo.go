package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polidanilo/LNI/internal/model"
)

// ShiftRepository 轮次数据访问接口
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id int64) (*model.Shift, error)
	GetBySeasonAndNumber(ctx context.Context, seasonID int64, number int) (*model.Shift, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]model.Shift, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Shift, error)
	CountBySeason(ctx context.Context, seasonID int64) (int64, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id int64) error
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id int64) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.WithContext(ctx).First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) GetBySeasonAndNumber(ctx context.Context, seasonID int64, number int) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("season_id = ? AND shift_number = ?", seasonID, number).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) ListBySeason(ctx context.Context, seasonID int64) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("shift_number ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Shift, error) {
	var shifts []model.Shift
	if len(ids) == 0 {
		return shifts, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) CountBySeason(ctx context.Context, seasonID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("season_id = ?", seasonID).
		Count(&count).Error
	return count, err
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(shift).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, id).Error
}
