package file

import (
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "calculations.json"

// Config - настройки файлового хранилища. Переменная: CALCULATOR_FILE_DIR.
type Config struct {
	Dir string `envconfig:"DIR" default:"data"`
}

// Path возвращает путь к файлу журнала.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, fileName)
}

// ensureDir создаёт каталог журнала, если его ещё нет.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
