package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// UserIDHeader - заголовок с идентификатором пользователя, его выставляет внешний слой аутентификации.
const UserIDHeader = "X-User-ID"

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP, пользователь.
// 5xx пишутся на уровне Error, 4xx - Warn.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"ip", c.ClientIP(),
			"user_id", c.GetHeader(UserIDHeader),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
