package router

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mergington-api/config"
	"mergington-api/internal/api/handler"
	"mergington-api/internal/api/middleware"
	"mergington-api/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil，此时报名接口不限流
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	// ── 健康检查 ──
	r.GET("/health", healthCheck(rdb))

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// ── 静态前端 ──
	r.GET("/", h.Activity.RedirectToIndex)
	if info, err := os.Stat(cfg.Server.StaticDir); err == nil && info.IsDir() {
		r.Static("/static", cfg.Server.StaticDir)
	} else {
		logger.Warn("静态目录不存在，/static 不可用", zap.String("dir", cfg.Server.StaticDir))
	}

	// ── 活动模块 ──
	activities := r.Group("/activities")
	{
		activities.GET("", h.Activity.ListActivities)
		activities.GET("/export", h.Export.ExportRosters)
		activities.POST("/:activity_name/signup",
			middleware.RateLimit(rdb, cfg.RateLimit.SignupLimit, cfg.RateLimit.Window),
			h.Activity.Signup,
		)
	}

	return r
}

// healthCheck 启用 Redis 时一并检查其连通性，不可用返回 503
func healthCheck(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": "ok"})
	}
}
