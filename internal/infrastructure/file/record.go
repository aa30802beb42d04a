package file

import (
	"time"

	"calchistory/internal/domain"
)

// record - запись в JSON-массиве calculations.json. Имена полей фиксированы форматом файла.
type record struct {
	ID        int64            `json:"Id"`
	Left      float64          `json:"Left"`
	Right     float64          `json:"Right"`
	Operation domain.Operation `json:"Operation"`
	Result    float64          `json:"Result"`
	CreatedAt time.Time        `json:"CreatedAt"`
	UserID    string           `json:"UserId"`
	IsActive  bool             `json:"IsActive"`
	DeletedAt *time.Time       `json:"DeletedAt"`
}

func toRecord(c domain.Calculation) record {
	r := record{
		ID:        c.ID,
		Left:      c.Left,
		Right:     c.Right,
		Operation: c.Operation,
		Result:    c.Result,
		CreatedAt: c.CreatedAt.UTC(),
		UserID:    c.UserID,
		IsActive:  c.IsActive,
	}
	if c.DeletedAt != nil {
		t := c.DeletedAt.UTC()
		r.DeletedAt = &t
	}
	return r
}

func (r record) toDomain() domain.Calculation {
	return domain.Calculation{
		ID:        r.ID,
		Left:      r.Left,
		Right:     r.Right,
		Operation: r.Operation,
		Result:    r.Result,
		CreatedAt: r.CreatedAt.UTC(),
		UserID:    r.UserID,
		IsActive:  r.IsActive,
		DeletedAt: r.DeletedAt,
	}
}
