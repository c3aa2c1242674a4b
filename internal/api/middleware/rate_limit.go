package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"mergington-api/internal/i18n"
	"mergington-api/pkg/redis"
	"mergington-api/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的速率限制中间件
// limit: 窗口内允许的最大请求数，<=0 表示不限流
// window: 滑动窗口时长
// rdb 为 nil 或 Redis 出错时降级放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			lang := i18n.ParseLang(c.Query("lang"))
			response.TooManyRequests(c, i18n.T(lang, i18n.TooManyRequests, nil))
			return
		}

		c.Next()
	}
}
