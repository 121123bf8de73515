package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
	"github.com/polidanilo/LNI/pkg/jwt"
)

// TokenBlacklist 注销 Token 的存储（Redis）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserListItem, error)
	// EnsureDefaultUser 进程启动时调用一次，用户已存在则跳过
	EnsureDefaultUser(ctx context.Context, username, password string) (bool, error)
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService 创建 AuthService 实例，blacklist 可为 nil
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
		now:       time.Now,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := s.createUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *authService) createUser(ctx context.Context, username, password string) (*model.User, error) {
	exists, err := s.repo.User.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("查询用户名失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码加密失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{Username: username, PasswordHash: string(hash)}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建用户失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:        *toUserResponse(user),
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Me / ListUsers ──────────────────────

func (s *authService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserListItem, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserListItem, 0, len(users))
	for i := range users {
		result = append(result, dto.UserListItem{ID: users[i].ID, Username: users[i].Username})
	}
	return result, nil
}

// ────────────────────── EnsureDefaultUser ──────────────────────

func (s *authService) EnsureDefaultUser(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	exists, err := s.repo.User.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("查询默认用户失败", zap.Error(err))
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err := s.createUser(ctx, username, password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			// 并发启动时另一实例已创建
			return false, nil
		}
		return false, err
	}
	s.logger.Info("已创建默认用户", zap.String("username", username))
	return true, nil
}

// ── 内部辅助方法 ──

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: formatTime(user.CreatedAt),
	}
}
