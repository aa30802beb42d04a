package ports

//go:generate mockgen -source=audit.go -destination=../mocks/audit_mock.go -package=mocks

import (
	"context"

	"calchistory/internal/domain"
)

// IAuditPublisher - отправка сохранённого вычисления в журнал аудита (например Kafka).
type IAuditPublisher interface {
	Publish(ctx context.Context, calc domain.Calculation) error
}

// IAuditSink - запись событий аудита в аналитическое хранилище (например ClickHouse).
type IAuditSink interface {
	WriteCalculation(ctx context.Context, calc domain.Calculation) error
}
