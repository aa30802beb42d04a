package domain

import (
	"math"
	"strings"
)

// Range - включительный диапазон [Min, Max]. Min > Max не совпадает ни с чем.
type Range struct {
	Min float64
	Max float64
}

// Contains проверяет v на попадание в диапазон с включением обеих границ.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Empty сообщает, что диапазон не может совпасть ни с одним значением.
func (r Range) Empty() bool {
	return r.Min > r.Max
}

// Filter - критерии выборки, которые хранилище может применить у себя (predicate pushdown).
// Нулевое значение выбирает все записи, включая неактивные.
type Filter struct {
	ActiveOnly  bool
	Operation   *Operation
	ResultRange *Range
	// Operand совпадает, если Left == Operand или Right == Operand (точное сравнение float).
	Operand *float64
	UserID  string
}

// Match применяет фильтр к одной записи.
func (f Filter) Match(c Calculation) bool {
	if f.ActiveOnly && !c.IsActive {
		return false
	}
	if f.Operation != nil && c.Operation != *f.Operation {
		return false
	}
	if f.ResultRange != nil && !f.ResultRange.Contains(c.Result) {
		return false
	}
	if f.Operand != nil && c.Left != *f.Operand && c.Right != *f.Operand {
		return false
	}
	if f.UserID != "" && c.UserID != f.UserID {
		return false
	}
	return true
}

// SortKey - порядок выдачи истории.
type SortKey int

const (
	// SortByCreatedAt - от новых к старым, порядок по умолчанию.
	SortByCreatedAt SortKey = iota
	// SortByResult - по возрастанию результата.
	SortByResult
)

// ParseSortKey понимает "result" и "createdAt"; всё остальное даёт порядок по умолчанию.
func ParseSortKey(s string) SortKey {
	if strings.EqualFold(strings.TrimSpace(s), "result") {
		return SortByResult
	}
	return SortByCreatedAt
}

func (k SortKey) String() string {
	if k == SortByResult {
		return "result"
	}
	return "createdAt"
}

// Criteria - параметры запроса к истории: фильтры, сортировка, страница.
type Criteria struct {
	Operation   *Operation
	ResultRange *Range
	Operand     *float64
	UserID      string
	// IncludeInactive отключает фильтр по IsActive (мягко удалённые записи).
	IncludeInactive bool
	SortBy          SortKey
	Page            int
	PageSize        int
}

// Validate проверяет параметры пагинации.
func (c Criteria) Validate() error {
	if c.Page < 1 || c.PageSize < 1 {
		return ErrInvalidPageParameters
	}
	return nil
}

// Filter возвращает фильтр для хранилища.
func (c Criteria) Filter() Filter {
	return Filter{
		ActiveOnly:  !c.IncludeInactive,
		Operation:   c.Operation,
		ResultRange: c.ResultRange,
		Operand:     c.Operand,
		UserID:      c.UserID,
	}
}

// Offset - число записей, пропускаемых перед страницей.
// При переполнении возвращает math.MaxInt: такая страница всегда за концом выборки.
func (c Criteria) Offset() int {
	if c.Page <= 1 || c.PageSize <= 0 {
		return 0
	}
	if c.Page-1 > math.MaxInt/c.PageSize {
		return math.MaxInt
	}
	return (c.Page - 1) * c.PageSize
}

// Page - одна страница результата. TotalCount считается до пагинации.
type Page[T any] struct {
	TotalCount int
	Page       int
	PageSize   int
	Items      []T
}

// SummaryItem - краткое представление без операндов, с именем пользователя.
type SummaryItem struct {
	ID        int64
	Operation Operation
	Result    float64
	Username  string
}

// HistoryItem - представление истории без идентификации пользователя.
type HistoryItem struct {
	Left      float64
	Right     float64
	Operation Operation
	Result    float64
}
