package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

const (
	dashboardRecentLimit   = 5
	dashboardProblemsLimit = 10
)

// DashboardService 首页概览业务接口
type DashboardService interface {
	Home(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Home(ctx context.Context) (*dto.DashboardResponse, error) {
	orders, err := s.repo.Order.RecentCompleted(ctx, dashboardRecentLimit)
	if err != nil {
		s.logger.Error("查询最近采购单失败", zap.Error(err))
		return nil, err
	}
	works, err := s.repo.Work.RecentCompleted(ctx, dashboardRecentLimit)
	if err != nil {
		s.logger.Error("查询最近维护工作失败", zap.Error(err))
		return nil, err
	}
	problems, err := s.repo.Problem.RecentOpen(ctx, dashboardProblemsLimit)
	if err != nil {
		s.logger.Error("查询未解决故障失败", zap.Error(err))
		return nil, err
	}

	var summary dto.DashboardSummary
	if summary.TotalOpenProblems, err = s.repo.Problem.CountByStatus(ctx, model.ProblemOpen); err != nil {
		s.logger.Error("统计故障失败", zap.Error(err))
		return nil, err
	}
	if summary.TotalPendingOrders, err = s.repo.Order.CountByStatus(ctx, model.StatusPending); err != nil {
		s.logger.Error("统计采购单失败", zap.Error(err))
		return nil, err
	}
	if summary.TotalPendingWorks, err = s.repo.Work.CountByStatus(ctx, model.StatusPending); err != nil {
		s.logger.Error("统计维护工作失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{
		RecentCompletedOrders: make([]dto.DashboardOrder, 0, len(orders)),
		RecentCompletedWorks:  make([]dto.DashboardWork, 0, len(works)),
		OpenProblems:          make([]dto.DashboardProblem, 0, len(problems)),
		Summary:               summary,
	}
	for i := range orders {
		o := &orders[i]
		resp.RecentCompletedOrders = append(resp.RecentCompletedOrders, dto.DashboardOrder{
			ID:       o.ID,
			Title:    o.Title,
			Amount:   o.Amount.InexactFloat64(),
			Date:     formatDate(o.OrderDate),
			Category: o.Category,
		})
	}
	for i := range works {
		w := &works[i]
		resp.RecentCompletedWorks = append(resp.RecentCompletedWorks, dto.DashboardWork{
			ID:       w.ID,
			Title:    w.Title,
			Category: string(w.Category),
			Date:     formatDate(w.WorkDate),
		})
	}
	for i := range problems {
		p := &problems[i]
		item := dto.DashboardProblem{
			ID:           p.ID,
			BoatID:       p.BoatID,
			Description:  p.Description,
			PartAffected: p.PartAffected,
			ReportedDate: formatDate(p.ReportedDate),
		}
		if p.Boat != nil {
			item.BoatName = p.Boat.Name
		}
		resp.OpenProblems = append(resp.OpenProblems, item)
	}
	return resp, nil
}
