package domain

import (
	"context"
	"errors"
	"fmt"
)

// Ошибки валидации: возвращаются до любого обращения к хранилищу.
var (
	ErrUnsupportedOperation  = errors.New("unsupported operation")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrInvalidOperand        = errors.New("operand must be a finite number")
	ErrInvalidPageParameters = errors.New("page and pageSize must be positive")
	ErrMissingUser           = errors.New("user id is required")
)

// ErrStorageUnavailable оборачивает любой сбой носителя (диск, соединение, таймаут).
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrNotFound зарезервирована под выборку одной записи по id.
var ErrNotFound = errors.New("not found")

// IsClientError сообщает, что ошибка вызвана входными данными, а не инфраструктурой.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrInvalidOperand) ||
		errors.Is(err, ErrInvalidPageParameters)
}

// AsStorageErr приводит истечение таймаута или отмену ctx к ErrStorageUnavailable.
// Ошибки, уже обёрнутые в ErrStorageUnavailable, и прочие ошибки возвращаются как есть.
func AsStorageErr(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return err
}
