package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"calchistory/internal/domain"
)

// ICalculatorUseCase - вычисление и сохранение операций.
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, req domain.Request, userID string) (domain.Calculation, error)
	GetAll(ctx context.Context) ([]domain.Calculation, error)
}

// IQueryUseCase - фильтрация, сортировка и пагинация истории.
type IQueryUseCase interface {
	Query(ctx context.Context, c domain.Criteria) (domain.Page[domain.SummaryItem], error)
	History(ctx context.Context, c domain.Criteria) (domain.Page[domain.HistoryItem], error)
}

// IAuditUseCase - обработка событий аудита, пришедших из брокера.
type IAuditUseCase interface {
	HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error
}
