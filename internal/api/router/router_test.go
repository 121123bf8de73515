package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/config"
	"github.com/polidanilo/LNI/internal/api/handler"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8000, BodyLimit: 1 << 20},
		Auth:   config.AuthConfig{JWTSecret: "router-secret-0123", AccessTokenTTL: time.Hour},
		Admin:  config.AdminConfig{SeedSecret: "segreto"},
	}
	// 仅验证路由与中间件，不会调用到 Service
	h := handler.NewHandler(&service.Service{})
	return Setup(cfg, h, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
}

func TestSetup_RouteProtection(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/seasons", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/works", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/dashboard/home", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/orders", http.StatusUnauthorized},
		{http.MethodPatch, "/api/v1/problems/1/toggle-status", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/reports/season/1", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/admin/seed", http.StatusForbidden},
		{http.MethodGet, "/api/v1/orders/abc", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/shifts/season/0", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestSetup_SecurityHeaders(t *testing.T) {
	r := newTestEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}
