package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"calchistory/internal/ports"
)

// Controller - системные маршруты: liveness, readiness, метрики.
type Controller struct {
	deps map[string]ports.IPinger
	log  *slog.Logger
}

// New создаёт системный контроллер. deps - зависимости, проверяемые в /readyness, по имени.
func New(deps map[string]ports.IPinger, log *slog.Logger) *Controller {
	return &Controller{deps: deps, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	failed := gin.H{}
	for name, dep := range c.deps {
		if err := dep.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "dependency", name, "error", err)
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "errors": failed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
