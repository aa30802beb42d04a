package ports

//go:generate mockgen -source=users.go -destination=../mocks/users_mock.go -package=mocks

import "context"

// IUserDirectory - внешний справочник пользователей, нужен для сводки (имя по userId).
// Неизвестные id в ответ не попадают.
type IUserDirectory interface {
	Usernames(ctx context.Context, ids []string) (map[string]string, error)
}
