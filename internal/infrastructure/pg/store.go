package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var (
	_ ports.ICalculationStore = (*CalculationStore)(nil)
	_ ports.IPinger           = (*CalculationStore)(nil)
)

const calculationsTable = "calculations"

var calculationColumns = []string{
	"id", "left_operand", "right_operand", "operation", "result",
	"created_at", "user_id", "is_active", "deleted_at",
}

// CalculationStore реализует ports.ICalculationStore для PostgreSQL.
// Фильтры выполняются в WHERE (predicate pushdown), мягкое удаление - через is_active.
type CalculationStore struct {
	db      *DB
	builder squirrel.StatementBuilderType
	log     *slog.Logger
}

// NewCalculationStore возвращает хранилище вычислений.
func NewCalculationStore(db *DB, log *slog.Logger) *CalculationStore {
	return &CalculationStore{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:     log,
	}
}

// Save вставляет запись; ID назначает последовательность БД.
func (s *CalculationStore) Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	query, args, err := s.builder.
		Insert(calculationsTable).
		Columns("left_operand", "right_operand", "operation", "result", "created_at", "user_id", "is_active", "deleted_at").
		Values(calc.Left, calc.Right, calc.Operation.String(), calc.Result, calc.CreatedAt.UTC(), calc.UserID, calc.IsActive, calc.DeletedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("build insert: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&calc.ID); err != nil {
		s.log.Debug("Save failed", "error", err)
		return domain.Calculation{}, unavailable("save", err)
	}
	return calc, nil
}

// LoadAll выбирает записи по фильтру, порядок - по ID.
func (s *CalculationStore) LoadAll(ctx context.Context, filter domain.Filter) ([]domain.Calculation, error) {
	query, args, err := s.selectQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Debug("LoadAll failed", "error", err)
		return nil, unavailable("load", err)
	}
	defer rows.Close()

	list := make([]domain.Calculation, 0)
	for rows.Next() {
		var (
			c         domain.Calculation
			operation string
			deletedAt *time.Time
		)
		err := rows.Scan(&c.ID, &c.Left, &c.Right, &operation, &c.Result, &c.CreatedAt, &c.UserID, &c.IsActive, &deletedAt)
		if err != nil {
			return nil, unavailable("scan", err)
		}
		if c.Operation, err = domain.ParseOperation(operation); err != nil {
			return nil, fmt.Errorf("calculation %d: %w", c.ID, err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		c.DeletedAt = deletedAt
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("load", err)
	}
	return list, nil
}

// Ping проверяет доступность БД (readiness).
func (s *CalculationStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *CalculationStore) selectQuery(filter domain.Filter) squirrel.SelectBuilder {
	q := s.builder.Select(calculationColumns...).From(calculationsTable)
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Operation != nil {
		q = q.Where(squirrel.Eq{"operation": filter.Operation.String()})
	}
	if r := filter.ResultRange; r != nil {
		q = q.Where(squirrel.GtOrEq{"result": r.Min}).Where(squirrel.LtOrEq{"result": r.Max})
	}
	if filter.Operand != nil {
		q = q.Where(squirrel.Or{
			squirrel.Eq{"left_operand": *filter.Operand},
			squirrel.Eq{"right_operand": *filter.Operand},
		})
	}
	if filter.UserID != "" {
		q = q.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	return q.OrderBy("id ASC")
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: postgres %s: %v", domain.ErrStorageUnavailable, op, err)
}
