package service

import (
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/config"
	"github.com/polidanilo/LNI/internal/repository"
	"github.com/polidanilo/LNI/pkg/jwt"
	"github.com/polidanilo/LNI/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Season    SeasonService
	Shift     ShiftService
	Boat      BoatService
	Order     OrderService
	Work      WorkService
	Problem   ProblemService
	Report    ReportService
	Export    ExportService
	Dashboard DashboardService
	Seed      SeedService
}

// NewService 创建 Service 聚合
// rdb 可为 nil，此时注销不写黑名单
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}
	policy := NewPolicy(cfg.Auth.EnforceOwnership)

	return &Service{
		Auth:      NewAuthService(repo, jwtMgr, blacklist, logger),
		Season:    NewSeasonService(repo, logger),
		Shift:     NewShiftService(repo, logger),
		Boat:      NewBoatService(repo, logger),
		Order:     NewOrderService(repo, policy, logger),
		Work:      NewWorkService(repo, policy, logger),
		Problem:   NewProblemService(repo, policy, logger),
		Report:    NewReportService(repo, logger),
		Export:    NewExportService(repo, logger),
		Dashboard: NewDashboardService(repo, logger),
		Seed:      NewSeedService(repo, logger),
	}
}
