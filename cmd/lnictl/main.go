package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/polidanilo/LNI/config"
	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/repository"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/database"
	"github.com/polidanilo/LNI/pkg/jwt"
	applogger "github.com/polidanilo/LNI/pkg/logger"
)

// App 命令行共享依赖
type App struct {
	cfg    *config.Config
	db     *gorm.DB
	sqlDB  *sql.DB
	repo   *repository.Repository
	logger *zap.Logger
	ctx    context.Context
}

var (
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lnictl",
		Short: "LNI Works admin CLI",
		Long:  `Administrative tasks for the LNI Works backend: migrations, reference data and users.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if app.sqlDB != nil {
				_ = app.sqlDB.Close()
			}
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: ./config/config.yaml)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(createUserCmd())
	rootCmd.AddCommand(listUsersCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp 加载配置、日志并连接数据库
func initApp() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	app = &App{
		cfg:    cfg,
		db:     db,
		sqlDB:  sqlDB,
		repo:   repository.NewRepository(db),
		logger: logger,
		ctx:    context.Background(),
	}
	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RunMigrations(app.sqlDB, app.logger); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the club's boats and boat parts when no boat exists yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.NewSeedService(app.repo, app.logger).SeedReferenceData(app.ctx)
			if err != nil {
				return fmt.Errorf("failed to seed reference data: %w", err)
			}
			if result.Skipped {
				fmt.Println("Boats already present, nothing to do")
				return nil
			}
			fmt.Printf("Inserted %d boats and %d parts\n", result.Boats, result.Parts)
			return nil
		},
	}
}

func createUserCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.RegisterRequest{Username: username, Password: password}
			// 与 HTTP 注册接口使用相同的 binding 规则
			v := validator.New()
			v.SetTagName("binding")
			if err := v.Struct(req); err != nil {
				return fmt.Errorf("invalid user: %w", err)
			}

			authSvc := service.NewAuthService(app.repo, jwt.NewManager(&app.cfg.Auth), nil, app.logger)
			user, err := authSvc.Register(app.ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Printf("Created user %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authSvc := service.NewAuthService(app.repo, jwt.NewManager(&app.cfg.Auth), nil, app.logger)
			users, err := authSvc.ListUsers(app.ctx)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			fmt.Printf("\nFound %d users:\n\n", len(users))
			for _, u := range users {
				fmt.Printf("- %d %s\n", u.ID, u.Username)
			}
			return nil
		},
	}
}
