package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/polidanilo/LNI/internal/model"
)

// BoatRepository 船只数据访问接口
type BoatRepository interface {
	Create(ctx context.Context, boat *model.Boat) error
	CreateBatch(ctx context.Context, boats []model.Boat) error
	GetByID(ctx context.Context, id int64) (*model.Boat, error)
	// List boatType 为空时返回全部
	List(ctx context.Context, boatType model.BoatType) ([]model.Boat, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, boat *model.Boat) error
	Delete(ctx context.Context, id int64) error
}

type boatRepo struct {
	db *gorm.DB
}

// NewBoatRepo 创建 BoatRepository 实例
func NewBoatRepo(db *gorm.DB) BoatRepository {
	return &boatRepo{db: db}
}

func (r *boatRepo) Create(ctx context.Context, boat *model.Boat) error {
	return r.db.WithContext(ctx).Create(boat).Error
}

func (r *boatRepo) CreateBatch(ctx context.Context, boats []model.Boat) error {
	if len(boats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(boats, 100).Error
}

func (r *boatRepo) GetByID(ctx context.Context, id int64) (*model.Boat, error) {
	var boat model.Boat
	if err := r.db.WithContext(ctx).First(&boat, id).Error; err != nil {
		return nil, err
	}
	return &boat, nil
}

func (r *boatRepo) List(ctx context.Context, boatType model.BoatType) ([]model.Boat, error) {
	var boats []model.Boat
	q := r.db.WithContext(ctx)
	if boatType != "" {
		q = q.Where("type = ?", boatType)
	}
	err := q.Order("id ASC").Find(&boats).Error
	return boats, err
}

func (r *boatRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Boat{}).Count(&count).Error
	return count, err
}

func (r *boatRepo) Update(ctx context.Context, boat *model.Boat) error {
	return r.db.WithContext(ctx).Save(boat).Error
}

func (r *boatRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Boat{}, id).Error
}

// ────────────────────── BoatPart ──────────────────────

// BoatPartRepository 船只部件参考数据访问接口
type BoatPartRepository interface {
	CreateBatch(ctx context.Context, parts []model.BoatPart) error
	ListNamesByType(ctx context.Context, boatType model.BoatType) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type boatPartRepo struct {
	db *gorm.DB
}

// NewBoatPartRepo 创建 BoatPartRepository 实例
func NewBoatPartRepo(db *gorm.DB) BoatPartRepository {
	return &boatPartRepo{db: db}
}

func (r *boatPartRepo) CreateBatch(ctx context.Context, parts []model.BoatPart) error {
	if len(parts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(parts, 100).Error
}

func (r *boatPartRepo) ListNamesByType(ctx context.Context, boatType model.BoatType) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.BoatPart{}).
		Where("boat_type = ?", boatType).
		Order("id ASC").
		Pluck("part_name", &names).Error
	return names, err
}

func (r *boatPartRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BoatPart{}).Count(&count).Error
	return count, err
}
