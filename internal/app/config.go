package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"calchistory/internal/api/http"
	"calchistory/internal/infrastructure/click"
	"calchistory/internal/infrastructure/file"
	"calchistory/internal/infrastructure/kafka"
	"calchistory/internal/infrastructure/mongo"
	"calchistory/internal/infrastructure/pg"
	"calchistory/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// Бэкенды хранилища вычислений.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// envFileVar - путь к .env; если не задан, пробуем ./.env.
const envFileVar = "CALCULATOR_ENV_FILE"

// Config - конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile      string        `envconfig:"LOG_FILE"`
	Store        string        `envconfig:"STORE" default:"file"`
	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"3s"`

	Server     http.ServerConfig `envconfig:"SERVER"`
	File       file.Config       `envconfig:"FILE"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig не ограничивает.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("unknown store %q: want %s, %s or %s", c.Store, StoreFile, StorePostgres, StoreMongo)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.StoreTimeout)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Переменные окружения имеют приоритет над .env.
func LoadCfg() (Config, error) {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("config: %s не найден, используем окружение: %v", path, err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
