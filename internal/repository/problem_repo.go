package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polidanilo/LNI/internal/model"
)

// ProblemRepository 船只故障数据访问接口
type ProblemRepository interface {
	Create(ctx context.Context, problem *model.BoatProblem) error
	GetByID(ctx context.Context, id int64) (*model.BoatProblem, error)
	List(ctx context.Context, filter ProblemFilter) ([]model.BoatProblem, error)
	ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.BoatProblem, error)
	RecentOpen(ctx context.Context, limit int) ([]model.BoatProblem, error)
	CountByShift(ctx context.Context, shiftID int64) (int64, error)
	CountByBoat(ctx context.Context, boatID int64) (int64, error)
	CountByStatus(ctx context.Context, status model.ProblemStatus) (int64, error)
	Update(ctx context.Context, problem *model.BoatProblem) error
	Delete(ctx context.Context, id int64) error
}

type problemRepo struct {
	db *gorm.DB
}

// NewProblemRepo 创建 ProblemRepository 实例
func NewProblemRepo(db *gorm.DB) ProblemRepository {
	return &problemRepo{db: db}
}

func (r *problemRepo) Create(ctx context.Context, problem *model.BoatProblem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(problem).Error
}

func (r *problemRepo) GetByID(ctx context.Context, id int64) (*model.BoatProblem, error) {
	var problem model.BoatProblem
	if err := r.db.WithContext(ctx).Preload("Boat").First(&problem, id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *problemRepo) List(ctx context.Context, f ProblemFilter) ([]model.BoatProblem, error) {
	q := r.db.WithContext(ctx).Preload("Boat")
	if f.BoatID > 0 {
		q = q.Where("boat_id = ?", f.BoatID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ShiftID > 0 {
		q = q.Where("shift_id = ?", f.ShiftID)
	}

	var problems []model.BoatProblem
	err := q.Order("reported_date DESC, id DESC").Find(&problems).Error
	return problems, err
}

func (r *problemRepo) ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.BoatProblem, error) {
	var problems []model.BoatProblem
	if len(shiftIDs) == 0 {
		return problems, nil
	}
	err := r.db.WithContext(ctx).
		Where("shift_id IN ?", shiftIDs).
		Order("reported_date ASC, id ASC").
		Find(&problems).Error
	return problems, err
}

func (r *problemRepo) RecentOpen(ctx context.Context, limit int) ([]model.BoatProblem, error) {
	var problems []model.BoatProblem
	err := r.db.WithContext(ctx).
		Preload("Boat").
		Where("status = ?", model.ProblemOpen).
		Order("reported_date DESC, id DESC").
		Limit(limit).
		Find(&problems).Error
	return problems, err
}

func (r *problemRepo) CountByShift(ctx context.Context, shiftID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BoatProblem{}).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *problemRepo) CountByBoat(ctx context.Context, boatID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BoatProblem{}).
		Where("boat_id = ?", boatID).
		Count(&count).Error
	return count, err
}

func (r *problemRepo) CountByStatus(ctx context.Context, status model.ProblemStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BoatProblem{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *problemRepo) Update(ctx context.Context, problem *model.BoatProblem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(problem).Error
}

func (r *problemRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.BoatProblem{}, id).Error
}
