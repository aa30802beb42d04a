package system

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"calchistory/internal/mocks"
	"calchistory/internal/ports"
)

func serve(t *testing.T, deps map[string]ports.IPinger, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(deps, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := serve(t, nil, "/liveness")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadyness(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIPinger(ctrl)
	cache := mocks.NewMockIPinger(ctrl)

	store.EXPECT().Ping(gomock.Any()).Return(nil)
	cache.EXPECT().Ping(gomock.Any()).Return(nil)
	w := serve(t, map[string]ports.IPinger{"postgres": store, "redis": cache}, "/readyness")
	assert.Equal(t, http.StatusOK, w.Code)

	store.EXPECT().Ping(gomock.Any()).Return(nil)
	cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = serve(t, map[string]ports.IPinger{"postgres": store, "redis": cache}, "/readyness")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"not ready","errors":{"redis":"connection refused"}}`, w.Body.String())
}

func TestMetrics(t *testing.T) {
	w := serve(t, nil, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
