package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

const (
	handleAttempts = 5
	handleBackoff  = 200 * time.Millisecond
)

// messageReader - часть kafka.Reader, нужная консьюмеру.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает события аудита и передаёт их use case.
type Consumer struct {
	r       messageReader
	uc      ports.IAuditUseCase
	backoff time.Duration
	log     *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IAuditUseCase, log *slog.Logger) *Consumer {
	return &Consumer{r: New(cfg).reader(), uc: uc, backoff: handleBackoff, log: log}
}

// Run в цикле читает сообщения, декодирует их и вызывает uc.HandleCalculationEvent, коммитит при успехе.
// Битые сообщения коммитятся и пропускаются. Сбой обработки повторяется с паузой; если все попытки
// исчерпаны, Run возвращает ошибку без коммита, и после перезапуска сообщение читается снова.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		calc, err := decode(msg.Value)
		if err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		} else if err := c.handle(ctx, msg, calc); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle передаёт событие use case, повторяя при ошибке до handleAttempts раз.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, calc domain.Calculation) error {
	delay := c.backoff
	for attempt := 1; ; attempt++ {
		err := c.uc.HandleCalculationEvent(ctx, calc)
		if err == nil {
			return nil
		}
		if attempt == handleAttempts {
			c.log.Error("kafka handle failed, stop without commit", "error", err, "attempts", attempt,
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			return fmt.Errorf("handle offset %d: %w", msg.Offset, err)
		}
		c.log.Warn("kafka handle error, retry", "error", err, "attempt", attempt, "offset", msg.Offset)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
