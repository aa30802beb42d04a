package calculations

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"calchistory/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// errBadQuery - ошибка разбора query-параметров, отдаётся клиенту как 400.
type errBadQuery struct {
	param string
	err   error
}

func (e *errBadQuery) Error() string {
	return fmt.Sprintf("invalid query parameter %q: %v", e.param, e.err)
}

func (e *errBadQuery) Unwrap() error { return e.err }

// criteria собирает domain.Criteria из query-параметров operation, min, max, operand, sortBy, page, pageSize.
// Диапазон применяется, только если заданы обе границы.
func criteria(ctx *gin.Context) (domain.Criteria, error) {
	c := domain.Criteria{
		SortBy:   domain.ParseSortKey(ctx.Query("sortBy")),
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}
	var err error
	if c.Page, err = intParam(ctx, "page", defaultPage); err != nil {
		return c, err
	}
	if c.PageSize, err = intParam(ctx, "pageSize", defaultPageSize); err != nil {
		return c, err
	}
	if s, ok := ctx.GetQuery("operation"); ok {
		op, err := domain.ParseOperation(s)
		if err != nil {
			return c, err
		}
		c.Operation = &op
	}
	if s, ok := ctx.GetQuery("operand"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c, &errBadQuery{param: "operand", err: err}
		}
		c.Operand = &v
	}
	minS, hasMin := ctx.GetQuery("min")
	maxS, hasMax := ctx.GetQuery("max")
	if hasMin || hasMax {
		if !hasMin || !hasMax {
			return c, &errBadQuery{param: "min/max", err: fmt.Errorf("both bounds are required")}
		}
		lo, err := strconv.ParseFloat(minS, 64)
		if err != nil {
			return c, &errBadQuery{param: "min", err: err}
		}
		hi, err := strconv.ParseFloat(maxS, 64)
		if err != nil {
			return c, &errBadQuery{param: "max", err: err}
		}
		c.ResultRange = &domain.Range{Min: lo, Max: hi}
	}
	return c, nil
}

func intParam(ctx *gin.Context, name string, def int) (int, error) {
	s, ok := ctx.GetQuery(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &errBadQuery{param: name, err: err}
	}
	return v, nil
}
