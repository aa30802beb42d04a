package calculator

import (
	"log/slog"
	"time"

	"calchistory/internal/ports"
)

// DefaultStoreTimeout ограничивает одно обращение к хранилищу, если таймаут не задан.
const DefaultStoreTimeout = 3 * time.Second

// UseCase - бизнес-логика калькулятора.
type UseCase struct {
	store   ports.ICalculationStore
	audit   ports.IAuditPublisher
	timeout time.Duration
	now     func() time.Time
	log     *slog.Logger
}

// New создаёт юзкейс калькулятора. audit может быть nil: тогда журнал аудита не ведётся.
func New(store ports.ICalculationStore, audit ports.IAuditPublisher, timeout time.Duration, log *slog.Logger) *UseCase {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &UseCase{store: store, audit: audit, timeout: timeout, now: time.Now, log: log}
}
