package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// logWriter возвращает writer в файл path + stderr. Пустой path или ошибка открытия - только stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку (debug, info, warn, error) в slog.Level. Неизвестное значение - Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает текстовый логгер с уровнем level; при непустом file пишет ещё и в файл.
func New(level, file string) *slog.Logger {
	return NewWithWriter(logWriter(file), level)
}

// NewWithWriter - то же, что New, но в произвольный writer (тесты, pipe).
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
