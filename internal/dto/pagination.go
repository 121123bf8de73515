package dto

const defaultLimit = 50

// Pagination 列表分页参数
// 两种互斥模式：page/page_size（从 1 开始）与 skip/limit（从 0 开始）。
// page 与 page_size 同时大于 0 时优先生效。
type Pagination struct {
	Page     int `form:"page"      binding:"omitempty,min=0"`
	PageSize int `form:"page_size" binding:"omitempty,min=0,max=1000"`
	Skip     int `form:"skip"      binding:"omitempty,min=0"`
	Limit    int `form:"limit"     binding:"omitempty,min=0,max=1000"`
}

// Window 解析为 offset/limit
func (p *Pagination) Window() (offset, limit int) {
	if p.Page > 0 && p.PageSize > 0 {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return p.Skip, limit
}

// Sorting 排序参数，未知字段由各仓储回退到默认字段
type Sorting struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Desc 是否降序（默认降序）
func (s *Sorting) Desc() bool {
	return s.Order == "" || s.Order == "desc" || s.Order == "DESC"
}
