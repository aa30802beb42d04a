package pg

import (
	"context"
	"fmt"
)

// Схема хранилища. Таблица users принадлежит внешнему сервису идентификации,
// здесь создаётся только если её ещё нет, чтобы сводка могла делать lookup по id.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       TEXT PRIMARY KEY,
		username TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS calculations (
		id            BIGSERIAL PRIMARY KEY,
		left_operand  DOUBLE PRECISION NOT NULL,
		right_operand DOUBLE PRECISION NOT NULL,
		operation     VARCHAR(16) NOT NULL,
		result        DOUBLE PRECISION NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		user_id       TEXT NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		deleted_at    TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_active_operation ON calculations (is_active, operation)`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_active_result ON calculations (is_active, result)`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_user ON calculations (user_id)`,
}

// Migrate создаёт таблицы и индексы, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
