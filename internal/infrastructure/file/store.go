package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var (
	_ ports.ICalculationStore = (*CalculationStore)(nil)
	_ ports.IPinger           = (*CalculationStore)(nil)
)

// CalculationStore хранит все вычисления одним JSON-массивом в файле.
// Save перечитывает весь журнал, дописывает запись и перезаписывает файл целиком.
// Параллельные Save из разных процессов/горутин могут потерять запись: хранилище рассчитано на одного писателя.
type CalculationStore struct {
	dir  string
	path string
	log  *slog.Logger
}

// NewCalculationStore возвращает файловое хранилище по конфигу. Каталог создаётся при первом Save.
func NewCalculationStore(cfg *Config, log *slog.Logger) *CalculationStore {
	return &CalculationStore{dir: cfg.Dir, path: cfg.Path(), log: log}
}

// Save присваивает ID (максимальный + 1) и перезаписывает журнал.
func (s *CalculationStore) Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Calculation{}, unavailable("save", err)
	}
	if err := ensureDir(s.dir); err != nil {
		s.log.Debug("Save failed", "error", err)
		return domain.Calculation{}, unavailable("save", err)
	}

	records, err := s.read()
	if err != nil {
		s.log.Debug("Save read failed", "path", s.path, "error", err)
		return domain.Calculation{}, unavailable("save", err)
	}

	var maxID int64
	for _, r := range records {
		maxID = max(maxID, r.ID)
	}
	calc.ID = maxID + 1
	records = append(records, toRecord(calc))

	if err := s.write(records); err != nil {
		s.log.Debug("Save write failed", "path", s.path, "error", err)
		return domain.Calculation{}, unavailable("save", err)
	}
	return calc, nil
}

// LoadAll читает журнал и фильтрует записи в памяти, порядок - по ID.
func (s *CalculationStore) LoadAll(ctx context.Context, filter domain.Filter) ([]domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("load", err)
	}
	records, err := s.read()
	if err != nil {
		s.log.Debug("LoadAll failed", "path", s.path, "error", err)
		return nil, unavailable("load", err)
	}
	list := make([]domain.Calculation, 0, len(records))
	for _, r := range records {
		c := r.toDomain()
		if filter.Match(c) {
			list = append(list, c)
		}
	}
	return list, nil
}

// Ping проверяет, что каталог журнала доступен (readiness).
func (s *CalculationStore) Ping(_ context.Context) error {
	if err := ensureDir(s.dir); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// read возвращает содержимое журнала. Отсутствующий или пустой файл - пустой журнал.
func (s *CalculationStore) read() ([]record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return records, nil
}

// write перезаписывает журнал целиком через временный файл и rename.
func (s *CalculationStore) write(records []record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, fileName+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Clean(s.path))
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: file %s: %v", domain.ErrStorageUnavailable, op, err)
}
