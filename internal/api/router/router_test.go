package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-portal/backend/config"
	"club-portal/backend/internal/api/handler"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/jwt"
)

// ── 测试桩 ──

// 目标记录一律不存在的 Repository，Service 使用真实实现
type missingEvents struct{ repository.EventRepository }

func (missingEvents) GetByID(context.Context, int64) (*model.Event, error) {
	return nil, gorm.ErrRecordNotFound
}

func (missingEvents) GetDetail(context.Context, int64) (*model.EventDetail, error) {
	return nil, gorm.ErrRecordNotFound
}

type missingFiles struct{ repository.FileRepository }

func (missingFiles) GetByID(context.Context, int64) (*model.File, error) {
	return nil, gorm.ErrRecordNotFound
}

type missingMembers struct{ repository.MemberRepository }

func (missingMembers) GetByID(context.Context, int64) (*model.Member, error) {
	return nil, gorm.ErrRecordNotFound
}

type missingAnnouncements struct{ repository.AnnouncementRepository }

func (missingAnnouncements) GetByID(context.Context, int64) (*model.Announcement, error) {
	return nil, gorm.ErrRecordNotFound
}

func (missingAnnouncements) List(context.Context, *int64, int) ([]model.AnnouncementDetail, error) {
	return []model.AnnouncementDetail{}, nil
}

type fakeRevocations struct{ revoked map[string]bool }

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

type fakeLimiter struct{ calls int }

func (f *fakeLimiter) CheckRateLimit(_ context.Context, _ string, limit int, _ time.Duration) (bool, int, error) {
	f.calls++
	return f.calls <= limit, limit - f.calls, nil
}

type testEnv struct {
	engine  http.Handler
	jwtMgr  *jwt.Manager
	revoked *fakeRevocations
	limiter *fakeLimiter
}

func newTestEnv(t *testing.T, pingErr error) *testEnv {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "production", BodyLimit: 1 << 20},
		Database:  config.DatabaseConfig{QueryTimeout: 5 * time.Second},
		Auth:      config.AuthConfig{JWTSecret: "router-test-secret-0123456789abcdef", TokenTTL: time.Hour},
		RateLimit: config.RateLimitConfig{AuthLimit: 2, AuthWindow: time.Minute},
	}
	logger := zap.NewNop()

	repo := &repository.Repository{
		Announcement: missingAnnouncements{},
		Event:        missingEvents{},
		File:         missingFiles{},
		Member:       missingMembers{},
	}
	svc := &service.Service{
		Announcement: service.NewAnnouncementService(repo, logger),
		Event:        service.NewEventService(repo, logger),
		File:         service.NewFileService(repo, logger),
		Member:       service.NewMemberService(repo, logger),
		Export:       service.NewExportService(repo, logger),
	}
	h := handler.NewHandler(cfg, svc, logger)
	system := handler.NewSystemHandler(func(context.Context) error { return pingErr }, logger)

	env := &testEnv{
		jwtMgr:  jwt.NewManager(&cfg.Auth),
		revoked: &fakeRevocations{revoked: map[string]bool{}},
		limiter: &fakeLimiter{},
	}
	env.engine = newEngine(cfg, h, system, env.jwtMgr, env.revoked, env.limiter, logger)
	return env
}

func (e *testEnv) token(t *testing.T, role policy.Role, deptID *int64) string {
	t.Helper()
	tok, err := e.jwtMgr.Issue(7, "tester", string(role), deptID)
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}
	return tok
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func int64Ptr(v int64) *int64 { return &v }

// ── 认证 ──

func TestRoutes_RequireAuthentication(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do("GET", "/api/community/announcements", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未登录访问公告列表期望 401，实际 %d", w.Code)
	}

	w = env.do("GET", "/api/community/announcements", "not-a-jwt", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("无效 Token 期望 401，实际 %d", w.Code)
	}

	w = env.do("GET", "/api/community/announcements", env.token(t, policy.RoleMember, nil), "")
	if w.Code != http.StatusOK {
		t.Errorf("登录后期望 200，实际 %d", w.Code)
	}
}

func TestRoutes_UnknownRoleInToken(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do("GET", "/api/community/announcements", env.token(t, policy.Role("admin"), nil), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未知角色期望 401，实际 %d", w.Code)
	}
}

func TestRoutes_RevokedToken(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t, policy.RoleMember, nil)

	claims, err := env.jwtMgr.Parse(tok)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}
	env.revoked.revoked[claims.ID] = true

	w := env.do("GET", "/api/community/announcements", tok, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("已吊销 Token 期望 401，实际 %d", w.Code)
	}
}

// ── 鉴权 ──

func TestRoutes_RequireAction(t *testing.T) {
	env := newTestEnv(t, nil)
	body := `{"title":"简报","category_id":1,"year":2024,"google_drive_url":"https://drive.google.com/x"}`

	// 普通社员无上传文件权限
	w := env.do("POST", "/api/files", env.token(t, policy.RoleMember, nil), body)
	if w.Code != http.StatusForbidden {
		t.Errorf("社员上传文件期望 403，实际 %d", w.Code)
	}

	w = env.do("GET", "/api/members/export", env.token(t, policy.RoleAlumni, nil), "")
	if w.Code != http.StatusForbidden {
		t.Errorf("校友导出名册期望 403，实际 %d", w.Code)
	}
}

func TestRoutes_OfficerOtherDepartment(t *testing.T) {
	env := newTestEnv(t, nil)
	body := `{"title":"简报","category_id":1,"year":2024,"department_id":3,"google_drive_url":"https://drive.google.com/x"}`

	w := env.do("POST", "/api/files", env.token(t, policy.RoleOfficer, int64Ptr(2)), body)
	if w.Code != http.StatusForbidden {
		t.Errorf("干部为其他部门上传文件期望 403，实际 %d", w.Code)
	}
}

// ── 资源不存在 ──

func TestRoutes_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do("GET", "/api/community/events/999", env.token(t, policy.RoleMember, nil), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("不存在的活动期望 404，实际 %d", w.Code)
	}

	w = env.do("GET", "/api/community/events/999/ics", env.token(t, policy.RoleMember, nil), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("导出不存在的活动期望 404，实际 %d", w.Code)
	}

	w = env.do("GET", "/api/no-such-route", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("未知路由期望 404，实际 %d", w.Code)
	}
}

func TestRoutes_MissingTargetBeforePermission(t *testing.T) {
	env := newTestEnv(t, nil)
	member := env.token(t, policy.RoleMember, nil)

	tests := []struct {
		method, path, body string
	}{
		{"PUT", "/api/community/events/999", `{"title":"改名"}`},
		{"DELETE", "/api/community/events/999", ""},
		{"PUT", "/api/community/announcements/999", `{"title":"改名"}`},
		{"DELETE", "/api/community/announcements/999", ""},
		{"PUT", "/api/files/999", `{"title":"改名"}`},
		{"DELETE", "/api/files/999", ""},
		{"DELETE", "/api/members/999", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// 社员无修改权限，但目标不存在应先返回 404
			if w := env.do(tt.method, tt.path, member, tt.body); w.Code != http.StatusNotFound {
				t.Errorf("期望 404，实际 %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

// ── 限流 ──

func TestRoutes_AuthRateLimit(t *testing.T) {
	env := newTestEnv(t, nil)

	// 请求体无效也会先经过限流
	for i := 0; i < 2; i++ {
		if w := env.do("POST", "/api/auth/login", "", "{}"); w.Code != http.StatusBadRequest {
			t.Fatalf("第 %d 次请求期望 400，实际 %d", i+1, w.Code)
		}
	}
	w := env.do("POST", "/api/auth/login", "", "{}")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("超出限额期望 429，实际 %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 响应应带 Retry-After")
	}
}

// ── 健康检查 ──

func TestRoutes_Health(t *testing.T) {
	if w := newTestEnv(t, nil).do("GET", "/health", "", ""); w.Code != http.StatusOK {
		t.Errorf("数据库可用期望 200，实际 %d", w.Code)
	}
	if w := newTestEnv(t, errors.New("refused")).do("GET", "/health", "", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("数据库不可用期望 503，实际 %d", w.Code)
	}
}

func TestRoutes_RequestIDEchoed(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do("GET", "/health", "", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("响应应包含 X-Request-ID")
	}
}
