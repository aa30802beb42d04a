package audit

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"calchistory/internal/domain"
	"calchistory/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestHandleCalculationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockIAuditSink(ctrl)
	calc := domain.Calculation{ID: 1, Left: 1, Right: 2, Operation: domain.OpAdd, Result: 3}

	sink.EXPECT().WriteCalculation(gomock.Any(), calc).Return(nil)

	assert.NoError(t, New(sink, newTestLogger()).HandleCalculationEvent(context.Background(), calc))
}

func TestHandleCalculationEvent_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockIAuditSink(ctrl)
	boom := errors.New("clickhouse down")
	sink.EXPECT().WriteCalculation(gomock.Any(), gomock.Any()).Return(boom)

	err := New(sink, newTestLogger()).HandleCalculationEvent(context.Background(), domain.Calculation{Operation: domain.OpAdd})
	assert.ErrorIs(t, err, boom)
}
