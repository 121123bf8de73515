package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/config"
	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/pkg/jwt"
)

type fakeBlacklist struct {
	entries map[string]time.Duration
}

func (f *fakeBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	f.entries[jti] = ttl
	return nil
}

func newTestAuthService(t *testing.T) (*authService, *mockRepos, *fakeBlacklist) {
	t.Helper()
	repo, mocks := newMockRepository()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-0123456789",
		AccessTokenTTL: time.Hour,
	})
	bl := &fakeBlacklist{entries: make(map[string]time.Duration)}
	svc := NewAuthService(repo, jwtMgr, bl, zap.NewNop()).(*authService)
	return svc, mocks, bl
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "marco", Password: "velista"})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.ID == 0 || user.Username != "marco" {
		t.Fatalf("注册结果不正确: %+v", user)
	}

	token, err := svc.Login(ctx, &dto.LoginRequest{Username: "marco", Password: "velista"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("AccessToken 不应为空")
	}
	if token.TokenType != "bearer" {
		t.Errorf("期望 token_type=bearer，实际: %s", token.TokenType)
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("期望 expires_in=3600，实际: %d", token.ExpiresIn)
	}
	if token.User.ID != user.ID {
		t.Errorf("期望 user.id=%d，实际: %d", user.ID, token.User.ID)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Username: "marco", Password: "velista"}); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "marco", Password: "altro123"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望 ErrUsernameTaken，实际: %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Username: "marco", Password: "velista"}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "marco", Password: "sbagliata"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nessuno", Password: "velista"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _ := svc.Register(ctx, &dto.RegisterRequest{Username: "giulia", Password: "velista"})

	me, err := svc.Me(ctx, user.ID)
	if err != nil {
		t.Fatalf("查询当前用户失败: %v", err)
	}
	if me.Username != "giulia" {
		t.Errorf("期望 username=giulia，实际: %s", me.Username)
	}

	if _, err := svc.Me(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestAuthService_EnsureDefaultUserIdempotent(t *testing.T) {
	svc, mocks, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.EnsureDefaultUser(ctx, "admin", "admin123")
	if err != nil || !created {
		t.Fatalf("首次应创建默认用户: created=%v err=%v", created, err)
	}
	created, err = svc.EnsureDefaultUser(ctx, "admin", "admin123")
	if err != nil || created {
		t.Fatalf("再次调用应跳过: created=%v err=%v", created, err)
	}
	if len(mocks.users.users) != 1 {
		t.Errorf("期望 1 个用户，实际: %d", len(mocks.users.users))
	}

	created, err = svc.EnsureDefaultUser(ctx, "", "x")
	if err != nil || created {
		t.Errorf("空用户名应跳过: created=%v err=%v", created, err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, bl := newTestAuthService(t)
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if err := svc.Logout(ctx, "jti-1", now.Add(30*time.Minute)); err != nil {
		t.Fatalf("注销失败: %v", err)
	}
	if ttl := bl.entries["jti-1"]; ttl != 30*time.Minute {
		t.Errorf("期望黑名单 TTL=30m，实际: %v", ttl)
	}

	// 已过期的 Token 无需写入黑名单
	if err := svc.Logout(ctx, "jti-2", now.Add(-time.Minute)); err != nil {
		t.Fatalf("注销失败: %v", err)
	}
	if _, ok := bl.entries["jti-2"]; ok {
		t.Error("已过期 Token 不应写入黑名单")
	}
}

func TestAuthService_LogoutWithoutBlacklist(t *testing.T) {
	repo, _ := newMockRepository()
	jwtMgr := jwt.NewManager(&config.AuthConfig{JWTSecret: "test-secret-0123456789", AccessTokenTTL: time.Hour})
	svc := NewAuthService(repo, jwtMgr, nil, zap.NewNop())

	if err := svc.Logout(context.Background(), "jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("未配置黑名单时注销应成功，实际: %v", err)
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	for _, name := range []string{"anna", "bruno"} {
		if _, err := svc.Register(ctx, &dto.RegisterRequest{Username: name, Password: "velista"}); err != nil {
			t.Fatalf("注册失败: %v", err)
		}
	}
	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("列出用户失败: %v", err)
	}
	if len(users) != 2 || users[0].Username != "anna" {
		t.Errorf("用户列表不正确: %+v", users)
	}
}
