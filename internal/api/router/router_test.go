package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mergington-api/config"
	"mergington-api/internal/api/handler"
	"mergington-api/internal/model"
	"mergington-api/internal/repository"
	"mergington-api/internal/service"
	"mergington-api/pkg/redis"
)

func testConfig(staticDir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      8000,
			StaticDir: staticDir,
			BodyLimit: 1 << 20,
		},
		RateLimit: config.RateLimitConfig{SignupLimit: 10, Window: time.Minute},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Log:       config.LogConfig{Level: "info", Format: "json"},
	}
}

func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('ok')"), 0o600); err != nil {
		t.Fatalf("写入 app.js 失败: %v", err)
	}

	cfg := testConfig(staticDir)
	logger := zap.NewNop()
	repo := repository.NewRepository(model.SeedActivities())
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)
	return Setup(cfg, h, nil, logger)
}

func do(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouter_SignupFlow(t *testing.T) {
	r := setupEngine(t)

	w := do(r, "POST", "/activities/Chess%20Club/signup?email=new@mergington.edu")
	if w.Code != http.StatusOK {
		t.Fatalf("报名期望 200，实际=%d body=%s", w.Code, w.Body.String())
	}
	var msg map[string]string
	json.Unmarshal(w.Body.Bytes(), &msg)
	if msg["message"] != "Signed up new@mergington.edu for Chess Club" {
		t.Errorf("消息不符: %v", msg)
	}

	w = do(r, "GET", "/activities")
	var list map[string]struct {
		Participants []string `json:"participants"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	p := list["Chess Club"].Participants
	if len(p) != 3 || p[2] != "new@mergington.edu" {
		t.Errorf("新成员应追加到末尾: %v", p)
	}

	w = do(r, "POST", "/activities/Chess%20Club/signup?email=new@mergington.edu&lang=zh")
	if w.Code != http.StatusBadRequest {
		t.Errorf("重复报名期望 400，实际=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "学生已经报名") {
		t.Errorf("期望中文 detail，实际=%s", w.Body.String())
	}

	w = do(r, "POST", "/activities/Nonexistent%20Club/signup?email=a@b.edu")
	if w.Code != http.StatusNotFound {
		t.Errorf("未知活动期望 404，实际=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"detail":"Activity not found"`) {
		t.Errorf("detail 不符: %s", w.Body.String())
	}
}

func TestRouter_SignupEmptyEmail(t *testing.T) {
	r := setupEngine(t)

	w := do(r, "POST", "/activities/Chess%20Club/signup?email=")
	if w.Code != http.StatusOK {
		t.Fatalf("空邮箱期望 200，实际=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"message":"Signed up  for Chess Club"`) {
		t.Errorf("消息不符: %s", w.Body.String())
	}

	w = do(r, "POST", "/activities/Chess%20Club/signup")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("缺少 email 参数期望 422，实际=%d", w.Code)
	}
}

func TestRouter_ListActivitiesChinese(t *testing.T) {
	r := setupEngine(t)

	w := do(r, "GET", "/activities?lang=zh")
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "学习编程基础知识并开发软件项目") {
		t.Errorf("期望中文描述: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "_zh") {
		t.Errorf("不应包含 _zh 字段: %s", w.Body.String())
	}
}

func TestRouter_RootRedirectAndStatic(t *testing.T) {
	r := setupEngine(t)

	w := do(r, "GET", "/")
	if w.Code != http.StatusTemporaryRedirect || w.Header().Get("Location") != "/static/index.html" {
		t.Errorf("根路径应 307 跳转，实际=%d %s", w.Code, w.Header().Get("Location"))
	}

	w = do(r, "GET", "/static/app.js")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("静态页面期望 200，实际=%d", w.Code)
	}
}

func TestRouter_HealthMetricsExport(t *testing.T) {
	r := setupEngine(t)

	if w := do(r, "GET", "/health"); w.Code != http.StatusOK {
		t.Errorf("/health 期望 200，实际=%d", w.Code)
	}

	do(r, "POST", "/activities/Gym%20Class/signup?email=metrics@mergington.edu")
	w := do(r, "GET", "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics 期望 200，实际=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "activity_signups_total") {
		t.Error("/metrics 应包含 activity_signups_total")
	}

	w = do(r, "GET", "/activities/export")
	if w.Code != http.StatusOK {
		t.Errorf("导出期望 200，实际=%d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("导出内容不应为空")
	}
}

func TestRouter_MissingStaticDir(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing"))
	cfg.Metrics.Enabled = false
	logger := zap.NewNop()
	svc := service.NewService(cfg, repository.NewRepository(model.SeedActivities()), logger)
	r := Setup(cfg, handler.NewHandler(svc), nil, logger)

	if w := do(r, "GET", "/static/app.js"); w.Code != http.StatusNotFound {
		t.Errorf("静态目录缺失时期望 404，实际=%d", w.Code)
	}
	if w := do(r, "GET", "/metrics"); w.Code != http.StatusNotFound {
		t.Errorf("关闭指标时 /metrics 期望 404，实际=%d", w.Code)
	}
	if w := do(r, "GET", "/activities"); w.Code != http.StatusOK {
		t.Errorf("/activities 期望 200，实际=%d", w.Code)
	}
}

func TestRouter_HealthPingsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := zap.NewNop()
	rdb, err := redis.NewClient(&config.RedisConfig{Addr: mr.Addr()}, logger)
	if err != nil {
		t.Fatalf("连接 miniredis 失败: %v", err)
	}
	defer rdb.Close()

	cfg := testConfig(t.TempDir())
	svc := service.NewService(cfg, repository.NewRepository(model.SeedActivities()), logger)
	r := Setup(cfg, handler.NewHandler(svc), rdb, logger)

	w := do(r, "GET", "/health")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"redis":"ok"`) {
		t.Errorf("Redis 可用时期望 200，实际=%d %s", w.Code, w.Body.String())
	}

	mr.Close()
	w = do(r, "GET", "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Redis 不可用时期望 503，实际=%d %s", w.Code, w.Body.String())
	}
}
