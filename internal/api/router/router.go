package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/config"
	"github.com/polidanilo/LNI/internal/api/handler"
	"github.com/polidanilo/LNI/internal/api/middleware"
	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/pkg/jwt"
	"github.com/polidanilo/LNI/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil，此时不做黑名单校验与登录限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("注册校验规则失败", zap.Error(err))
		}
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 公开路由
		v1.POST("/auth/login",
			middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, logger),
			h.Auth.Login)
		v1.POST("/auth/register", h.Auth.Register)
		v1.GET("/orders", h.Order.ListOrders)
		v1.GET("/orders/:id", h.Order.GetOrder)
		v1.GET("/shifts/:id", h.Shift.GetShift)
		v1.GET("/shifts/season/:season_id", h.Shift.ListBySeason)

		// 管理接口（X-Admin-Secret）
		v1.POST("/admin/seed", middleware.AdminSecret(cfg.Admin.SeedSecret), h.Admin.Seed)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			auth := authorized.Group("/auth")
			{
				auth.POST("/logout", h.Auth.Logout)
				auth.GET("/me", h.Auth.Me)
				auth.GET("/users", h.Auth.ListUsers)
			}

			seasons := authorized.Group("/seasons")
			{
				seasons.GET("", h.Season.ListSeasons)
				seasons.GET("/:id", h.Season.GetSeason)
				seasons.POST("", h.Season.CreateSeason)
				seasons.PUT("/:id", h.Season.UpdateSeason)
				seasons.DELETE("/:id", h.Season.DeleteSeason)
			}

			shifts := authorized.Group("/shifts")
			{
				shifts.POST("", h.Shift.CreateShift)
				shifts.PUT("/:id", h.Shift.UpdateShift)
				shifts.DELETE("/:id", h.Shift.DeleteShift)
			}

			boats := authorized.Group("/boats")
			{
				boats.GET("", h.Boat.ListBoats)
				boats.GET("/type/:boat_type/parts", h.Boat.PartsByType)
				boats.GET("/:id", h.Boat.GetBoat)
				boats.POST("", h.Boat.CreateBoat)
				boats.PUT("/:id", h.Boat.UpdateBoat)
				boats.DELETE("/:id", h.Boat.DeleteBoat)
			}

			orders := authorized.Group("/orders")
			{
				orders.GET("/export", h.Order.ExportOrders)
				orders.POST("/import", h.Order.ImportOrders)
				orders.POST("", h.Order.CreateOrder)
				orders.PUT("/:id", h.Order.UpdateOrder)
				orders.DELETE("/:id", h.Order.DeleteOrder)
			}

			works := authorized.Group("/works")
			{
				works.GET("", h.Work.ListWorks)
				works.GET("/export", h.Work.ExportWorks)
				works.GET("/:id", h.Work.GetWork)
				works.POST("", h.Work.CreateWork)
				works.PUT("/:id", h.Work.UpdateWork)
				works.DELETE("/:id", h.Work.DeleteWork)
			}

			problems := authorized.Group("/problems")
			{
				problems.GET("", h.Problem.ListProblems)
				problems.GET("/:id", h.Problem.GetProblem)
				problems.POST("", h.Problem.CreateProblem)
				problems.PUT("/:id", h.Problem.UpdateProblem)
				problems.PATCH("/:id/toggle-status", h.Problem.ToggleStatus)
				problems.DELETE("/:id", h.Problem.DeleteProblem)
			}

			reports := authorized.Group("/reports")
			{
				reports.GET("/season/:id", h.Report.SeasonReport)
				reports.GET("/season/:id/export-excel", h.Report.ExportSeasonExcel)
				reports.GET("/season/:id/calendar", h.Report.ExportSeasonCalendar)
				reports.GET("/shift/:id", h.Report.ShiftReport)
			}

			authorized.GET("/dashboard/home", h.Dashboard.Home)
		}
	}

	return r
}
