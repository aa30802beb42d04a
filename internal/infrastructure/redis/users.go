package redis

import (
	"context"
	"log/slog"

	"calchistory/internal/ports"
)

var _ ports.IUserDirectory = (*UserDirectory)(nil)

// usernamesKey - hash userId -> username.
const usernamesKey = "calchistory:usernames"

// UserDirectory кэширует имена пользователей в Redis поверх другого справочника.
// Ошибки Redis не ломают запрос: справочник-источник остаётся источником истины.
type UserDirectory struct {
	cli  *Client
	next ports.IUserDirectory
	log  *slog.Logger
}

// NewUserDirectory оборачивает next кэшем.
func NewUserDirectory(cli *Client, next ports.IUserDirectory, log *slog.Logger) *UserDirectory {
	return &UserDirectory{cli: cli, next: next, log: log}
}

// Usernames отдаёт имена из кэша, промахи дочитывает из next и кладёт в кэш.
func (d *UserDirectory) Usernames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	missing := ids
	vals, err := d.cli.HMGet(ctx, usernamesKey, ids...).Result()
	if err != nil {
		d.log.Debug("cache get usernames failed", "error", err)
	} else {
		missing = missing[:0:0]
		for i, v := range vals {
			if s, ok := v.(string); ok {
				names[ids[i]] = s
				continue
			}
			missing = append(missing, ids[i])
		}
	}
	if len(missing) == 0 {
		return names, nil
	}

	fetched, err := d.next.Usernames(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fetched) > 0 {
		values := make(map[string]any, len(fetched))
		for id, name := range fetched {
			names[id] = name
			values[id] = name
		}
		if err := d.cli.HSet(ctx, usernamesKey, values).Err(); err != nil {
			d.log.Debug("cache set usernames failed", "error", err)
		}
	}
	return names, nil
}
