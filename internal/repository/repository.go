package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User     UserRepository
	Season   SeasonRepository
	Shift    ShiftRepository
	Boat     BoatRepository
	BoatPart BoatPartRepository
	Order    OrderRepository
	Work     WorkRepository
	Problem  ProblemRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Season:   NewSeasonRepo(db),
		Shift:    NewShiftRepo(db),
		Boat:     NewBoatRepo(db),
		BoatPart: NewBoatPartRepo(db),
		Order:    NewOrderRepo(db),
		Work:     NewWorkRepo(db),
		Problem:  NewProblemRepo(db),
		db:       db,
	}
}

// Transaction 在单个事务内执行 fn，fn 返回错误或 panic 时回滚
// 未绑定数据库（单元测试中的 mock 聚合）时直接以自身执行
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
