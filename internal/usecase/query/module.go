// Package query собирает страницы истории поверх любого ports.ICalculationStore.
//
// Порядок шагов фиксирован: фильтр активности -> смысловые фильтры -> TotalCount ->
// сортировка -> пагинация -> проекция.
package query

import (
	"log/slog"
	"time"

	"calchistory/internal/ports"
)

// DefaultStoreTimeout ограничивает одно обращение к хранилищу или справочнику.
const DefaultStoreTimeout = 3 * time.Second

// Engine - движок запросов к истории вычислений.
type Engine struct {
	store   ports.ICalculationStore
	users   ports.IUserDirectory
	timeout time.Duration
	log     *slog.Logger
}

// New создаёт движок. users может быть nil: тогда имена в сводке пустые.
func New(store ports.ICalculationStore, users ports.IUserDirectory, timeout time.Duration, log *slog.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &Engine{store: store, users: users, timeout: timeout, log: log}
}
