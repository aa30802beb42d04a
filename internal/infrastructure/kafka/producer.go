package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var _ ports.IAuditPublisher = (*Producer)(nil)

// Producer - обёртка над kafka.Writer, публикует сохранённые вычисления в топик аудита.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return &Producer{w: New(cfg).writer()}
}

// Publish отправляет одно вычисление; ключ - ID, чтобы события одной записи шли в одну партицию.
func (p *Producer) Publish(ctx context.Context, calc domain.Calculation) error {
	key, value, err := encode(calc)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	return p.w.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
