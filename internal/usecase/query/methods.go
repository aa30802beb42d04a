package query

import (
	"cmp"
	"context"
	"slices"

	"calchistory/internal/domain"
)

// Query возвращает страницу сводки {id, operation, result, username}.
func (e *Engine) Query(ctx context.Context, c domain.Criteria) (domain.Page[domain.SummaryItem], error) {
	page, total, err := e.run(ctx, c)
	if err != nil {
		return domain.Page[domain.SummaryItem]{}, err
	}
	names, err := e.usernames(ctx, page)
	if err != nil {
		return domain.Page[domain.SummaryItem]{}, err
	}
	items := make([]domain.SummaryItem, 0, len(page))
	for _, calc := range page {
		items = append(items, domain.SummaryItem{
			ID:        calc.ID,
			Operation: calc.Operation,
			Result:    calc.Result,
			Username:  names[calc.UserID],
		})
	}
	return domain.Page[domain.SummaryItem]{TotalCount: total, Page: c.Page, PageSize: c.PageSize, Items: items}, nil
}

// History возвращает страницу истории {left, right, operation, result} без данных о пользователе.
func (e *Engine) History(ctx context.Context, c domain.Criteria) (domain.Page[domain.HistoryItem], error) {
	page, total, err := e.run(ctx, c)
	if err != nil {
		return domain.Page[domain.HistoryItem]{}, err
	}
	items := make([]domain.HistoryItem, 0, len(page))
	for _, calc := range page {
		items = append(items, domain.HistoryItem{
			Left:      calc.Left,
			Right:     calc.Right,
			Operation: calc.Operation,
			Result:    calc.Result,
		})
	}
	return domain.Page[domain.HistoryItem]{TotalCount: total, Page: c.Page, PageSize: c.PageSize, Items: items}, nil
}

// run выполняет фильтрацию, подсчёт, сортировку и пагинацию; проекция остаётся вызывающему.
func (e *Engine) run(ctx context.Context, c domain.Criteria) ([]domain.Calculation, int, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, err
	}
	filter := c.Filter()
	if filter.ResultRange != nil && filter.ResultRange.Empty() {
		return nil, 0, nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	loaded, err := e.store.LoadAll(loadCtx, filter)
	if err != nil {
		return nil, 0, domain.AsStorageErr(loadCtx, err)
	}

	// Хранилище могло применить фильтр у себя; повторная проверка делает результат одинаковым для всех реализаций.
	matched := make([]domain.Calculation, 0, len(loaded))
	for _, calc := range loaded {
		if filter.Match(calc) {
			matched = append(matched, calc)
		}
	}
	total := len(matched)

	sortCalculations(matched, c.SortBy)

	offset := c.Offset()
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+c.PageSize, total)
	return matched[offset:end], total, nil
}

// sortCalculations сортирует по ключу, при равенстве - по ID по возрастанию.
func sortCalculations(list []domain.Calculation, key domain.SortKey) {
	slices.SortFunc(list, func(a, b domain.Calculation) int {
		var c int
		switch key {
		case domain.SortByResult:
			c = cmp.Compare(a.Result, b.Result)
		default:
			c = b.CreatedAt.Compare(a.CreatedAt)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// usernames делает один lookup на страницу по уникальным userId.
func (e *Engine) usernames(ctx context.Context, page []domain.Calculation) (map[string]string, error) {
	if e.users == nil || len(page) == 0 {
		return map[string]string{}, nil
	}
	seen := make(map[string]struct{}, len(page))
	ids := make([]string, 0, len(page))
	for _, calc := range page {
		if _, ok := seen[calc.UserID]; ok {
			continue
		}
		seen[calc.UserID] = struct{}{}
		ids = append(ids, calc.UserID)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	names, err := e.users.Usernames(lookupCtx, ids)
	if err != nil {
		e.log.Debug("username lookup failed", "error", err)
		return nil, domain.AsStorageErr(lookupCtx, err)
	}
	return names, nil
}
