package click

import (
	"context"
	"fmt"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var _ ports.IAuditSink = (*AuditWriter)(nil)

const auditTable = "calculations_audit"

// AuditWriter пишет события аудита в ClickHouse для аналитики по операциям и пользователям.
type AuditWriter struct {
	db *Client
}

// NewAuditWriter создаёт писатель журнала аудита.
func NewAuditWriter(db *Client) *AuditWriter {
	return &AuditWriter{db: db}
}

// EnsureTable создаёт таблицу аудита, если её ещё нет. Вызови один раз при старте.
// ReplacingMergeTree по id схлопывает повторные доставки одного события.
func (w *AuditWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id Int64,
			left_operand Float64,
			right_operand Float64,
			operation LowCardinality(String),
			result Float64,
			user_id String,
			created_at DateTime64(3, 'UTC')
		) ENGINE = ReplacingMergeTree()
		PARTITION BY toYYYYMM(created_at)
		ORDER BY (id)`,
		auditTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.IAuditSink: пишет одно вычисление.
func (w *AuditWriter) WriteCalculation(ctx context.Context, calc domain.Calculation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, left_operand, right_operand, operation, result, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		auditTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		calc.ID, calc.Left, calc.Right, calc.Operation.String(), calc.Result, calc.UserID, calc.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}
