package handler

import "github.com/polidanilo/LNI/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Season    *SeasonHandler
	Shift     *ShiftHandler
	Boat      *BoatHandler
	Order     *OrderHandler
	Work      *WorkHandler
	Problem   *ProblemHandler
	Report    *ReportHandler
	Dashboard *DashboardHandler
	Admin     *AdminHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Season:    NewSeasonHandler(svc.Season),
		Shift:     NewShiftHandler(svc.Shift),
		Boat:      NewBoatHandler(svc.Boat),
		Order:     NewOrderHandler(svc.Order, svc.Export),
		Work:      NewWorkHandler(svc.Work, svc.Export),
		Problem:   NewProblemHandler(svc.Problem),
		Report:    NewReportHandler(svc.Report, svc.Export),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Admin:     NewAdminHandler(svc.Seed),
	}
}
