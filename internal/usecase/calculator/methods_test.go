package calculator

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calchistory/internal/domain"
	"calchistory/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var fixedNow = time.Date(2026, 2, 12, 9, 17, 16, 0, time.FixedZone("MSK", 3*60*60))

func newUseCase(store *mocks.MockICalculationStore, audit *mocks.MockIAuditPublisher) *UseCase {
	uc := New(store, nil, time.Second, newTestLogger())
	if audit != nil {
		uc.audit = audit
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// Полный флоу: проверка -> расчёт -> Save -> публикация в аудит.
func TestCalculate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)
	audit := mocks.NewMockIAuditPublisher(ctrl)

	want := domain.Calculation{
		Left: 10, Right: 5, Operation: domain.OpAdd, Result: 15,
		CreatedAt: fixedNow.UTC(), UserID: "u1", IsActive: true,
	}
	saved := want
	saved.ID = 1

	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), want).Return(saved, nil),
		audit.EXPECT().Publish(gomock.Any(), saved).Return(nil),
	)

	uc := newUseCase(store, audit)
	got, err := uc.Calculate(context.Background(), domain.Request{Left: 10, Right: 5, Operation: domain.OpAdd}, "u1")

	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
}

func TestCalculate_Results(t *testing.T) {
	tests := []struct {
		name string
		req  domain.Request
		want float64
	}{
		{name: "вычитание", req: domain.Request{Left: 10, Right: 5, Operation: domain.OpSubtract}, want: 5},
		{name: "умножение", req: domain.Request{Left: 2.5, Right: 4, Operation: domain.OpMultiply}, want: 10},
		{name: "деление", req: domain.Request{Left: 1, Right: 3, Operation: domain.OpDivide}, want: 1.0 / 3.0},
		{name: "ноль делимое", req: domain.Request{Left: 0, Right: 3, Operation: domain.OpDivide}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockICalculationStore(ctrl)
			store.EXPECT().Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c domain.Calculation) (domain.Calculation, error) {
					c.ID = 7
					return c, nil
				})

			got, err := newUseCase(store, nil).Calculate(context.Background(), tt.req, "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Result)
			assert.Equal(t, tt.req.Operation, got.Operation)
			assert.True(t, got.IsActive)
		})
	}
}

// Ошибки валидации: хранилище не вызывается вовсе (мок без EXPECT упадёт на любом вызове).
func TestCalculate_ValidationBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.Request
		userID  string
		wantErr error
	}{
		{name: "деление на ноль", req: domain.Request{Left: 10, Right: 0, Operation: domain.OpDivide}, userID: "u1", wantErr: domain.ErrDivisionByZero},
		{name: "неизвестная операция", req: domain.Request{Left: 1, Right: 2, Operation: domain.Operation(9)}, userID: "u1", wantErr: domain.ErrUnsupportedOperation},
		{name: "NaN", req: domain.Request{Left: math.NaN(), Right: 2, Operation: domain.OpAdd}, userID: "u1", wantErr: domain.ErrInvalidOperand},
		{name: "нет пользователя", req: domain.Request{Left: 1, Right: 2, Operation: domain.OpAdd}, userID: "", wantErr: domain.ErrMissingUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockICalculationStore(ctrl)
			audit := mocks.NewMockIAuditPublisher(ctrl)

			_, err := newUseCase(store, audit).Calculate(context.Background(), tt.req, tt.userID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Ошибка хранилища возвращается без изменений, аудит не вызывается.
func TestCalculate_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)
	audit := mocks.NewMockIAuditPublisher(ctrl)

	storeErr := errors.Join(domain.ErrStorageUnavailable, errors.New("disk full"))
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.Calculation{}, storeErr)

	_, err := newUseCase(store, audit).Calculate(context.Background(), domain.Request{Left: 1, Right: 2, Operation: domain.OpAdd}, "u1")
	assert.Same(t, storeErr, err)
}

// Хранилище, зависшее дольше таймаута, даёт ErrStorageUnavailable.
func TestCalculate_StoreTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.Calculation) (domain.Calculation, error) {
			<-ctx.Done()
			return domain.Calculation{}, ctx.Err()
		})

	uc := newUseCase(store, nil)
	uc.timeout = 10 * time.Millisecond

	_, err := uc.Calculate(context.Background(), domain.Request{Left: 1, Right: 2, Operation: domain.OpAdd}, "u1")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// Сбой аудита не отменяет уже сохранённое вычисление.
func TestCalculate_AuditFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)
	audit := mocks.NewMockIAuditPublisher(ctrl)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.Calculation{ID: 3, Result: 3, Operation: domain.OpAdd}, nil)
	audit.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	got, err := newUseCase(store, audit).Calculate(context.Background(), domain.Request{Left: 1, Right: 2, Operation: domain.OpAdd}, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)

	expected := []domain.Calculation{
		{ID: 1, Left: 10, Right: 5, Operation: domain.OpAdd, Result: 15},
		{ID: 2, Left: 20, Right: 4, Operation: domain.OpDivide, Result: 5},
	}
	store.EXPECT().LoadAll(gomock.Any(), domain.Filter{}).Return(expected, nil)

	got, err := newUseCase(store, nil).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetAll_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockICalculationStore(ctrl)
	store.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageUnavailable)

	_, err := newUseCase(store, nil).GetAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestNew_DefaultTimeout(t *testing.T) {
	uc := New(nil, nil, 0, newTestLogger())
	assert.Equal(t, DefaultStoreTimeout, uc.timeout)
}
