package kafka

import (
	"encoding/json"
	"strconv"
	"time"

	"calchistory/internal/domain"
)

// event - сообщение аудита в топике. Формат совпадает с записью файлового журнала.
type event struct {
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

// encode возвращает ключ (ID записи) и тело сообщения.
func encode(c domain.Calculation) (key, value []byte, err error) {
	value, err = json.Marshal(event{
		ID:        c.ID,
		Left:      c.Left,
		Right:     c.Right,
		Operation: c.Operation,
		Result:    c.Result,
		CreatedAt: c.CreatedAt.UTC(),
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		DeletedAt: c.DeletedAt,
	})
	if err != nil {
		return nil, nil, err
	}
	return []byte(strconv.FormatInt(c.ID, 10)), value, nil
}

func decode(value []byte) (domain.Calculation, error) {
	var e event
	if err := json.Unmarshal(value, &e); err != nil {
		return domain.Calculation{}, err
	}
	return domain.Calculation{
		ID:        e.ID,
		Left:      e.Left,
		Right:     e.Right,
		Operation: e.Operation,
		Result:    e.Result,
		CreatedAt: e.CreatedAt.UTC(),
		UserID:    e.UserID,
		IsActive:  e.IsActive,
		DeletedAt: e.DeletedAt,
	}, nil
}
