package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calchistory/internal/infrastructure/click"
	"calchistory/internal/infrastructure/kafka"
	"calchistory/internal/usecase/audit"
)

// RunAudit читает топик аудита и пишет события в ClickHouse до SIGINT/SIGTERM.
func (a *App) RunAudit() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ch, err := click.New(ctx, &a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewAuditWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse ensure table: %w", err)
	}

	consumer := kafka.NewConsumer(&a.cfg.Kafka, audit.New(writer, a.log), a.log)
	defer consumer.Close()

	a.log.Info("audit consumer started", "topic", a.cfg.Kafka.Topic, "group", a.cfg.Kafka.GroupID)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
