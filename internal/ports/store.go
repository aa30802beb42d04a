package ports

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"

	"calchistory/internal/domain"
)

// ICalculationStore - контракт хранилища вычислений.
// Все реализации обязаны вести себя одинаково; сбои носителя оборачиваются в domain.ErrStorageUnavailable.
type ICalculationStore interface {
	// Save сохраняет запись и возвращает её с присвоенным ID.
	Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error)
	// LoadAll возвращает записи, подходящие под фильтр, упорядоченные по ID. Никогда не nil.
	LoadAll(ctx context.Context, filter domain.Filter) ([]domain.Calculation, error)
}

// IPinger - проверка доступности зависимости (readiness).
type IPinger interface {
	Ping(ctx context.Context) error
}
