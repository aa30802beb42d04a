package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "calchistory/internal/api/http"
	"calchistory/internal/api/http/controllers/calculations"
	"calchistory/internal/api/http/controllers/system"
	"calchistory/internal/infrastructure/file"
	"calchistory/internal/infrastructure/kafka"
	"calchistory/internal/infrastructure/mongo"
	"calchistory/internal/infrastructure/pg"
	"calchistory/internal/infrastructure/redis"
	"calchistory/internal/pkg/logger"
	"calchistory/internal/ports"
	"calchistory/internal/usecase/calculator"
	"calchistory/internal/usecase/query"
)

// App - приложение, хранит конфиг и логгер.
type App struct {
	cfg Config
	log *slog.Logger
}

// New создаёт приложение с конфигом (подключения открываются в Run).
func New(cfg Config) *App {
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	slog.SetDefault(log)
	return &App{cfg: cfg, log: log}
}

// backend - выбранное хранилище, справочник пользователей и что проверять в /readyness.
type backend struct {
	store   ports.ICalculationStore
	users   ports.IUserDirectory
	deps    map[string]ports.IPinger
	closers []func()
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openStore подключает хранилище по cfg.Store. Справочник пользователей есть только у postgres.
func (a *App) openStore(ctx context.Context, b *backend) error {
	switch a.cfg.Store {
	case StorePostgres:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		b.closers = append(b.closers, func() { _ = db.Close() })
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		b.store = pg.NewCalculationStore(db, a.log)
		b.users = pg.NewUserDirectory(db, a.log)
		b.deps["postgres"] = db
	case StoreMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		b.closers = append(b.closers, func() { _ = cli.Close(context.Background()) })
		store := mongo.NewCalculationStore(cli, a.log)
		b.store = store
		b.deps["mongo"] = store
	default:
		store := file.NewCalculationStore(&a.cfg.File, a.log)
		b.store = store
		b.deps["file"] = store
	}
	return nil
}

// openCache оборачивает справочник пользователей кэшем Redis, если он включён.
func (a *App) openCache(ctx context.Context, b *backend) error {
	if !a.cfg.Redis.Enabled || b.users == nil {
		return nil
	}
	rdb, err := redis.New(ctx, &a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	b.closers = append(b.closers, func() { _ = rdb.Close() })
	b.users = redis.NewUserDirectory(rdb, b.users, a.log)
	b.deps["redis"] = rdb
	return nil
}

// Run подключает хранилище, кэш и брокер, собирает юзкейсы и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := &backend{deps: map[string]ports.IPinger{}}
	defer b.close()
	if err := a.openStore(ctx, b); err != nil {
		return err
	}
	if err := a.openCache(ctx, b); err != nil {
		return err
	}

	var audit ports.IAuditPublisher
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		audit = producer
	}

	calcUC := calculator.New(b.store, audit, a.cfg.StoreTimeout, a.log)
	queryUC := query.New(b.store, b.users, a.cfg.StoreTimeout, a.log)

	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(b.deps, a.log),
		calculations.New(calcUC, queryUC, a.log))

	a.log.Info("application started", "http", a.cfg.Server.Addr(), "store", a.cfg.Store,
		"redis", a.cfg.Redis.Enabled, "kafka", a.cfg.Kafka.Enabled)
	return srv.Start(ctx)
}
