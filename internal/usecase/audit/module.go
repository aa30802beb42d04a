package audit

import (
	"context"
	"log/slog"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var _ ports.IAuditUseCase = (*UseCase)(nil)

// UseCase переносит события аудита из брокера в аналитическое хранилище.
type UseCase struct {
	sink ports.IAuditSink
	log  *slog.Logger
}

// New создаёт юзкейс аудита.
func New(sink ports.IAuditSink, log *slog.Logger) *UseCase {
	return &UseCase{sink: sink, log: log}
}

// HandleCalculationEvent вызывается консьюмером на каждое событие.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error {
	if err := u.sink.WriteCalculation(ctx, calc); err != nil {
		u.log.Warn("audit write", "id", calc.ID, "error", err)
		return err
	}
	u.log.Info("calculation stored to audit", "id", calc.ID, "operation", calc.Operation, "result", calc.Result)
	return nil
}
