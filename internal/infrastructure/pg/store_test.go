package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchistory/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{conn}, mock
}

var testColumns = []string{
	"id", "left_operand", "right_operand", "operation", "result",
	"created_at", "user_id", "is_active", "deleted_at",
}

func TestCalculationStore_Save(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCalculationStore(db, newTestLogger())
	created := time.Date(2026, 2, 12, 9, 17, 16, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO calculations .*left_operand.*deleted_at.* VALUES .* RETURNING id`).
		WithArgs(10.0, 5.0, "Add", 15.0, created, "u1", true, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	saved, err := store.Save(context.Background(), domain.Calculation{
		Left: 10, Right: 5, Operation: domain.OpAdd, Result: 15,
		CreatedAt: created, UserID: "u1", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, 15.0, saved.Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculationStore_Save_ConnectionLost(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCalculationStore(db, newTestLogger())

	mock.ExpectQuery(`INSERT INTO calculations`).WillReturnError(sql.ErrConnDone)

	_, err := store.Save(context.Background(), domain.Calculation{Operation: domain.OpAdd, UserID: "u1", IsActive: true})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculationStore_LoadAll_Pushdown(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCalculationStore(db, newTestLogger())
	created := time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC)
	deleted := created.Add(time.Hour)

	mock.ExpectQuery(`SELECT id, left_operand, right_operand, operation, result, created_at, user_id, is_active, deleted_at FROM calculations ` +
		`WHERE is_active = \$1 AND operation = \$2 AND result >= \$3 AND result <= \$4 AND \(left_operand = \$5 OR right_operand = \$6\) AND user_id = \$7 ORDER BY id ASC`).
		WithArgs(true, "Add", 10.0, 20.0, 5.0, 5.0, "u1").
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow(int64(1), 10.0, 5.0, "Add", 15.0, created, "u1", true, nil).
			AddRow(int64(2), 5.0, 5.0, "Add", 10.0, created, "u1", false, deleted))

	add := domain.OpAdd
	five := 5.0
	list, err := store.LoadAll(context.Background(), domain.Filter{
		ActiveOnly:  true,
		Operation:   &add,
		ResultRange: &domain.Range{Min: 10, Max: 20},
		Operand:     &five,
		UserID:      "u1",
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.Calculation{
		ID: 1, Left: 10, Right: 5, Operation: domain.OpAdd, Result: 15,
		CreatedAt: created, UserID: "u1", IsActive: true,
	}, list[0])
	require.NotNil(t, list[1].DeletedAt)
	assert.True(t, deleted.Equal(*list[1].DeletedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculationStore_LoadAll_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCalculationStore(db, newTestLogger())

	mock.ExpectQuery(`FROM calculations ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(testColumns))

	list, err := store.LoadAll(context.Background(), domain.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, list, "пустая выборка - пустой слайс, не nil")
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculationStore_LoadAll_Errors(t *testing.T) {
	t.Run("запрос не выполнился", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewCalculationStore(db, newTestLogger())
		mock.ExpectQuery(`FROM calculations`).WillReturnError(errors.New("connection refused"))

		_, err := store.LoadAll(context.Background(), domain.Filter{ActiveOnly: true})
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})

	t.Run("обрыв при чтении строк", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewCalculationStore(db, newTestLogger())
		mock.ExpectQuery(`FROM calculations`).
			WillReturnRows(sqlmock.NewRows(testColumns).
				AddRow(int64(1), 1.0, 2.0, "Add", 3.0, time.Now(), "u1", true, nil).
				RowError(0, errors.New("broken pipe")))

		_, err := store.LoadAll(context.Background(), domain.Filter{})
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})

	t.Run("неизвестная операция в строке", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewCalculationStore(db, newTestLogger())
		mock.ExpectQuery(`FROM calculations`).
			WillReturnRows(sqlmock.NewRows(testColumns).
				AddRow(int64(1), 1.0, 2.0, "Pow", 1.0, time.Now(), "u1", true, nil))

		_, err := store.LoadAll(context.Background(), domain.Filter{})
		assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	})
}

func TestUserDirectory_Usernames(t *testing.T) {
	db, mock := newMockDB(t)
	dir := NewUserDirectory(db, newTestLogger())

	mock.ExpectQuery(`SELECT id, username FROM users WHERE id IN \(\$1,\$2\)`).
		WithArgs("u1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow("u1", "alice"))

	names, err := dir.Usernames(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"u1": "alice"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDirectory_Usernames_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	dir := NewUserDirectory(db, newTestLogger())

	names, err := dir.Usernames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock := newMockDB(t)
	for range migrations {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
