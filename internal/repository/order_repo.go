package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polidanilo/LNI/internal/model"
)

// OrderRepository 采购单数据访问接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	// ListByShiftIDs 返回指定轮次下的全部采购单（含用户）
	ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.Order, error)
	RecentCompleted(ctx context.Context, limit int) ([]model.Order, error)
	CountByShift(ctx context.Context, shiftID int64) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepo 创建 OrderRepository 实例
func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Where(
			"(title ILIKE ? OR description ILIKE ? OR category ILIKE ? OR notes ILIKE ? OR created_by ILIKE ?)",
			like, like, like, like, like,
		)
	}
	if f.DateFrom != nil {
		q = q.Where("order_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("order_date <= ?", *f.DateTo)
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
	if f.AmountMin != nil {
		q = q.Where("amount >= ?", *f.AmountMin)
	}
	if f.AmountMax != nil {
		q = q.Where("amount <= ?", *f.AmountMax)
	}

	if f.GroupByShift {
		q = q.Order("shift_id ASC, order_date DESC, id DESC")
	} else {
		q = q.Order(sortClause(orderSortColumns, f.SortBy, "order_date", f.Desc))
	}

	var orders []model.Order
	err := f.Window.apply(q).Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListByShiftIDs(ctx context.Context, shiftIDs []int64) ([]model.Order, error) {
	var orders []model.Order
	if len(shiftIDs) == 0 {
		return orders, nil
	}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("shift_id IN ?", shiftIDs).
		Order("order_date ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) RecentCompleted(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusCompleted).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) CountByShift(ctx context.Context, shiftID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}
