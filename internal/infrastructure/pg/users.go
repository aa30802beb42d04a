package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"calchistory/internal/ports"
)

var _ ports.IUserDirectory = (*UserDirectory)(nil)

// UserDirectory читает имена пользователей из таблицы users.
type UserDirectory struct {
	db      *DB
	builder squirrel.StatementBuilderType
	log     *slog.Logger
}

// NewUserDirectory возвращает справочник пользователей.
func NewUserDirectory(db *DB, log *slog.Logger) *UserDirectory {
	return &UserDirectory{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:     log,
	}
}

// Usernames возвращает имена по списку id одним запросом.
func (d *UserDirectory) Usernames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	query, args, err := d.builder.Select("id", "username").From("users").Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		d.log.Debug("Usernames failed", "error", err)
		return nil, unavailable("usernames", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, unavailable("usernames scan", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("usernames", err)
	}
	return names, nil
}
