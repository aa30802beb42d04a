package calculations

import (
	"time"

	"calchistory/internal/domain"
)

// CalculateRequest - запрос на вычисление (POST /api/v1/calculations).
// Операнды - указатели, чтобы 0 проходил проверку binding:"required".
type CalculateRequest struct {
	Left      *float64 `json:"left" binding:"required"`
	Right     *float64 `json:"right" binding:"required"`
	Operation string   `json:"operation" binding:"required"`
}

// toDomain разбирает операцию; валидация операндов - в use case.
func (r CalculateRequest) toDomain() (domain.Request, error) {
	op, err := domain.ParseOperation(r.Operation)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.Request{Left: *r.Left, Right: *r.Right, Operation: op}, nil
}

// CalculateResponse - результат вычисления.
type CalculateResponse struct {
	ID        int64     `json:"id"`
	Result    float64   `json:"result"`
	Operation string    `json:"operation"`
	CreatedAt time.Time `json:"createdAt"`
}

// SummaryItem - запись сводки.
type SummaryItem struct {
	ID        int64   `json:"id"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
	Username  string  `json:"username"`
}

// HistoryItem - запись истории без пользователя.
type HistoryItem struct {
	Left      float64 `json:"left"`
	Right     float64 `json:"right"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
}

// PageResponse - страница с общим числом записей после фильтров.
type PageResponse[T any] struct {
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Data       []T `json:"data"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func summaryPage(p domain.Page[domain.SummaryItem]) PageResponse[SummaryItem] {
	data := make([]SummaryItem, len(p.Items))
	for i, it := range p.Items {
		data[i] = SummaryItem{ID: it.ID, Operation: it.Operation.String(), Result: it.Result, Username: it.Username}
	}
	return PageResponse[SummaryItem]{TotalCount: p.TotalCount, Page: p.Page, PageSize: p.PageSize, Data: data}
}

func historyPage(p domain.Page[domain.HistoryItem]) PageResponse[HistoryItem] {
	data := make([]HistoryItem, len(p.Items))
	for i, it := range p.Items {
		data[i] = HistoryItem{Left: it.Left, Right: it.Right, Operation: it.Operation.String(), Result: it.Result}
	}
	return PageResponse[HistoryItem]{TotalCount: p.TotalCount, Page: p.Page, PageSize: p.PageSize, Data: data}
}
