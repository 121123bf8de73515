package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polidanilo/LNI/internal/model"
)

// WorkRepository 维护工作数据访问接口
// 查询结果均预加载 User，用于填充 created_by
type WorkRepository interface {
	Create(ctx context.Context, work *model.Work) error
	GetByID(ctx context.Context, id int64) (*model.Work, error)
	List(ctx context.Context, filter WorkFilter) ([]model.Work, error)
	ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.Work, error)
	RecentCompleted(ctx context.Context, limit int) ([]model.Work, error)
	CountByShift(ctx context.Context, shiftID int64) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
	Update(ctx context.Context, work *model.Work) error
	Delete(ctx context.Context, id int64) error
}

type workRepo struct {
	db *gorm.DB
}

// NewWorkRepo 创建 WorkRepository 实例
func NewWorkRepo(db *gorm.DB) WorkRepository {
	return &workRepo{db: db}
}

func (r *workRepo) Create(ctx context.Context, work *model.Work) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(work).Error
}

func (r *workRepo) GetByID(ctx context.Context, id int64) (*model.Work, error) {
	var work model.Work
	if err := r.db.WithContext(ctx).Preload("User").First(&work, id).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *workRepo) List(ctx context.Context, f WorkFilter) ([]model.Work, error) {
	q := r.db.WithContext(ctx).Model(&model.Work{}).Preload("User")

	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Where("(title ILIKE ? OR description ILIKE ?)", like, like)
	}
	if f.DateFrom != nil {
		q = q.Where("work_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("work_date <= ?", *f.DateTo)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if len(f.ShiftIDs) > 0 {
		q = q.Where("shift_id IN ?", f.ShiftIDs)
	}

	q = q.Order(sortClause(workSortColumns, f.SortBy, "work_date", f.Desc))

	var works []model.Work
	err := f.Window.apply(q).Find(&works).Error
	return works, err
}

func (r *workRepo) ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.Work, error) {
	var works []model.Work
	if len(shiftIDs) == 0 {
		return works, nil
	}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("shift_id IN ?", shiftIDs).
		Order("work_date ASC, id ASC").
		Find(&works).Error
	return works, err
}

func (r *workRepo) RecentCompleted(ctx context.Context, limit int) ([]model.Work, error) {
	var works []model.Work
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", model.StatusCompleted).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&works).Error
	return works, err
}

func (r *workRepo) CountByShift(ctx context.Context, shiftID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Work{}).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *workRepo) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Work{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *workRepo) Update(ctx context.Context, work *model.Work) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(work).Error
}

func (r *workRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Work{}, id).Error
}
