package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Window 分页窗口，Limit <= 0 表示不分页（导出）
type Window struct {
	Offset int
	Limit  int
}

func (w Window) apply(q *gorm.DB) *gorm.DB {
	if w.Limit <= 0 {
		return q
	}
	return q.Offset(w.Offset).Limit(w.Limit)
}

// OrderFilter 采购单查询条件
type OrderFilter struct {
	Q         string // 标题 / 描述 / 分类 / 备注 / 署名 模糊匹配
	DateFrom  *time.Time
	DateTo    *time.Time
	Category  string
	Status    string
	ShiftIDs  []int64
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
	SortBy    string
	Desc      bool
	// GroupByShift 为 true 时忽略 SortBy，按轮次升序、日期降序排列（导出用）
	GroupByShift bool
	Window
}

// WorkFilter 维护工作查询条件
type WorkFilter struct {
	Q        string // 标题 / 描述 模糊匹配
	DateFrom *time.Time
	DateTo   *time.Time
	Category string
	Status   string
	ShiftIDs []int64
	SortBy   string
	Desc     bool
	Window
}

// ProblemFilter 故障查询条件
type ProblemFilter struct {
	BoatID  int64
	Status  string
	ShiftID int64
}

// 排序字段白名单，未知字段回退到各自默认字段
var (
	orderSortColumns = map[string]string{
		"order_date": "order_date",
		"amount":     "amount",
		"created_at": "created_at",
		"updated_at": "updated_at",
		"category":   "category",
		"status":     "status",
		"title":      "title",
	}
	workSortColumns = map[string]string{
		"work_date":  "work_date",
		"created_at": "created_at",
		"updated_at": "updated_at",
		"title":      "title",
		"status":     "status",
		"category":   "category",
	}
)

// sortClause 生成排序子句，附加 id 保证分页稳定
func sortClause(columns map[string]string, sortBy, fallback string, desc bool) string {
	col, ok := columns[sortBy]
	if !ok {
		col = fallback
	}
	dir := " ASC"
	if desc {
		dir = " DESC"
	}
	return col + dir + ", id" + dir
}

func likePattern(q string) string {
	return "%" + q + "%"
}
