package dto

// ── 首页概览 DTO ──

// DashboardOrder 最近完成的采购单
type DashboardOrder struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

// DashboardWork 最近完成的维护工作
type DashboardWork struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// DashboardProblem 未解决的故障
type DashboardProblem struct {
	ID           int64   `json:"id"`
	BoatID       int64   `json:"boat_id"`
	BoatName     string  `json:"boat_name"`
	Description  string  `json:"description"`
	PartAffected *string `json:"part_affected"`
	ReportedDate string  `json:"reported_date"`
}

// DashboardSummary 首页计数
type DashboardSummary struct {
	TotalOpenProblems  int64 `json:"total_open_problems"`
	TotalPendingOrders int64 `json:"total_pending_orders"`
	TotalPendingWorks  int64 `json:"total_pending_works"`
}

// DashboardResponse 首页概览
type DashboardResponse struct {
	RecentCompletedOrders []DashboardOrder   `json:"recent_completed_orders"`
	RecentCompletedWorks  []DashboardWork    `json:"recent_completed_works"`
	OpenProblems          []DashboardProblem `json:"open_problems"`
	Summary               DashboardSummary   `json:"summary"`
}
