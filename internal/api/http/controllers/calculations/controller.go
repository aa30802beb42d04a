package calculations

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calchistory/internal/api/http/middlewares"
	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

// Controller - маршруты вычислений и истории.
type Controller struct {
	calc  ports.ICalculatorUseCase
	query ports.IQueryUseCase
	log   *slog.Logger
}

// New создаёт контроллер.
func New(calc ports.ICalculatorUseCase, query ports.IQueryUseCase, log *slog.Logger) *Controller {
	return &Controller{calc: calc, query: query, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	calcs := api.Group("/calculations")
	calcs.POST("", c.calculate)
	calcs.GET("", c.list)
	calcs.GET("/by-operation", c.byOperation)
	calcs.GET("/by-result-range", c.byResultRange)
	calcs.GET("/summary", c.list)
	calcs.GET("/search", c.search)

	api.GET("/history", c.history)
}

// @Summary Выполнить вычисление
// @Tags calculations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос, неизвестная операция, деление на ноль"
// @Failure 401 {object} ErrorResponse "Нет пользователя"
// @Failure 503 {object} ErrorResponse "Хранилище недоступно"
// @Router /api/v1/calculations [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	dreq, err := req.toDomain()
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}

	calc, err := c.calc.Calculate(ctx.Request.Context(), dreq, ctx.GetHeader(middlewares.UserIDHeader))
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}
	ctx.JSON(http.StatusOK, CalculateResponse{
		ID:        calc.ID,
		Result:    calc.Result,
		Operation: calc.Operation.String(),
		CreatedAt: calc.CreatedAt,
	})
}

// list - сводка с фильтрами, сортировкой (sortBy=result|createdAt) и пагинацией.
func (c *Controller) list(ctx *gin.Context) {
	cr, err := criteria(ctx)
	if err != nil {
		c.fail(ctx, "list", err)
		return
	}
	c.summary(ctx, cr)
}

// byOperation - сводка по одной операции, operation обязателен.
func (c *Controller) byOperation(ctx *gin.Context) {
	if _, ok := ctx.GetQuery("operation"); !ok {
		c.fail(ctx, "by-operation", &errBadQuery{param: "operation", err: errors.New("required")})
		return
	}
	c.list(ctx)
}

// byResultRange - сводка по диапазону результата, min и max обязательны.
func (c *Controller) byResultRange(ctx *gin.Context) {
	_, hasMin := ctx.GetQuery("min")
	_, hasMax := ctx.GetQuery("max")
	if !hasMin || !hasMax {
		c.fail(ctx, "by-result-range", &errBadQuery{param: "min/max", err: errors.New("required")})
		return
	}
	c.list(ctx)
}

// search - поиск по операции, всегда от новых к старым.
func (c *Controller) search(ctx *gin.Context) {
	cr, err := criteria(ctx)
	if err != nil {
		c.fail(ctx, "search", err)
		return
	}
	cr.SortBy = domain.SortByCreatedAt
	c.summary(ctx, cr)
}

func (c *Controller) summary(ctx *gin.Context, cr domain.Criteria) {
	page, err := c.query.Query(ctx.Request.Context(), cr)
	if err != nil {
		c.fail(ctx, "summary", err)
		return
	}
	ctx.JSON(http.StatusOK, summaryPage(page))
}

// history - история {left, right, operation, result}, от новых к старым.
func (c *Controller) history(ctx *gin.Context) {
	cr, err := criteria(ctx)
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	cr.SortBy = domain.SortByCreatedAt
	page, err := c.query.History(ctx.Request.Context(), cr)
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	ctx.JSON(http.StatusOK, historyPage(page))
}

// fail переводит ошибку в HTTP-статус: клиентские - 400, нет пользователя - 401, хранилище - 503.
func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	var bad *errBadQuery
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &bad), domain.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingUser):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		c.log.Error(op+" failed", "error", err)
	} else {
		c.log.Warn(op+" rejected", "error", err)
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
