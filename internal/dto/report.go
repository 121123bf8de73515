package dto

// ── 报表模块 DTO ──

// OrdersSummary 采购单汇总（TotalAmount 仅含已完成）
type OrdersSummary struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalCount     int     `json:"total_count"`
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
}

// WorksSummary 维护工作汇总（ByCategory 仅含已完成）
type WorksSummary struct {
	TotalCount     int            `json:"total_count"`
	PendingCount   int            `json:"pending_count"`
	CompletedCount int            `json:"completed_count"`
	ByCategory     map[string]int `json:"by_category"`
}

// ProblemsSummary 故障汇总
type ProblemsSummary struct {
	TotalCount  int `json:"total_count"`
	OpenCount   int `json:"open_count"`
	ClosedCount int `json:"closed_count"`
}

// ShiftSubtotal 单个轮次小计（含全部状态）
type ShiftSubtotal struct {
	ShiftNumber   int     `json:"shift_number"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	OrdersCount   int     `json:"orders_count"`
	OrdersAmount  float64 `json:"orders_amount"`
	WorksCount    int     `json:"works_count"`
	ProblemsCount int     `json:"problems_count"`
}

// SeasonReportResponse 季节报表
type SeasonReportResponse struct {
	SeasonName         string             `json:"season_name"`
	SeasonYear         int                `json:"season_year"`
	TotalOrdersAmount  float64            `json:"total_orders_amount"`
	TotalOrdersCount   int                `json:"total_orders_count"`
	TotalWorksCount    int                `json:"total_works_count"`
	TotalProblemsCount int                `json:"total_problems_count"`
	ShiftsData         []ShiftSubtotal    `json:"shifts_data"`
	OrdersSummary      OrdersSummary      `json:"orders_summary"`
	WorksSummary       WorksSummary       `json:"works_summary"`
	ProblemsSummary    ProblemsSummary    `json:"problems_summary"`
	OrdersByCategory   map[string]float64 `json:"orders_by_category"`
	OrdersByMonth      map[string]float64 `json:"orders_by_month"`
	WorksByMonth       map[string]int     `json:"works_by_month"`
}

// ShiftReportOrder 轮次报表中的采购单
type ShiftReportOrder struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// ShiftReportWork 轮次报表中的维护工作
type ShiftReportWork struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// ShiftReportProblem 轮次报表中的故障
type ShiftReportProblem struct {
	ID     int64  `json:"id"`
	BoatID int64  `json:"boat_id"`
	Status string `json:"status"`
}

// ShiftReportSummary 轮次汇总（不区分状态）
type ShiftReportSummary struct {
	TotalOrdersAmount  float64 `json:"total_orders_amount"`
	TotalOrdersCount   int     `json:"total_orders_count"`
	TotalWorksCount    int     `json:"total_works_count"`
	TotalProblemsCount int     `json:"total_problems_count"`
}

// ShiftReportResponse 轮次报表
type ShiftReportResponse struct {
	ShiftNumber int                  `json:"shift_number"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Orders      []ShiftReportOrder   `json:"orders"`
	Works       []ShiftReportWork    `json:"works"`
	Problems    []ShiftReportProblem `json:"problems"`
	Summary     ShiftReportSummary   `json:"summary"`
}
