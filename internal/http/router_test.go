package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/audit"
	"jansetu/internal/profile"
	profilehandler "jansetu/internal/profile/handler"
)

type captureRecorder struct {
	events []*audit.Event
}

func (c *captureRecorder) Record(event *audit.Event) {
	c.events = append(c.events, event)
}

func newTestRouter(t *testing.T) (http.Handler, *captureRecorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := &captureRecorder{}

	profiles := profile.NewService(profile.NewInMemoryStore(), logger)

	router := New(Config{
		Logger: logger,
		Audit:  recorder,
		Handlers: []Registrar{
			profilehandler.New(profiles, logger),
		},
	})
	return router, recorder
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDAssigned(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/citizens/CIT-00000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/citizens/CIT-00000000", nil)
	req.Header.Set("X-Request-ID", "req-fixed-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-fixed-123", w.Header().Get("X-Request-ID"))
}

func TestMutatingRequestAudited(t *testing.T) {
	router, recorder := newTestRouter(t)

	body := `{"citizen":{"name":"Ramesh Kumar","age":30}}`
	req := httptest.NewRequest(http.MethodPost, "/api/citizens", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.Equal(t, "POST /api/citizens", event.Action)
	assert.Equal(t, "api", event.Actor)
	assert.Equal(t, "success", event.Outcome)
	assert.NotEmpty(t, event.RequestID)
}

func TestFailedMutationAuditedAsFailure(t *testing.T) {
	router, recorder := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/citizens", bytes.NewBufferString(`{"citizen":{}}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "failure", recorder.events[0].Outcome)
}

func TestReadRequestNotAudited(t *testing.T) {
	router, recorder := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/citizens/CIT-00000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, recorder.events)
}

func TestWorkerAsRecorder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := audit.NewInMemoryStore()
	worker := audit.NewWorker(store, nil, logger)
	worker.Start(context.Background())

	profiles := profile.NewService(profile.NewInMemoryStore(), logger)
	router := New(Config{
		Logger: logger,
		Audit:  worker,
		Handlers: []Registrar{
			profilehandler.New(profiles, logger),
		},
	})

	body := `{"citizen":{"name":"Sunita Devi","age":42}}`
	req := httptest.NewRequest(http.MethodPost, "/api/citizens", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	worker.Close()

	events, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "POST /api/citizens", events[0].Action)
	assert.NotEmpty(t, events[0].ID)
}
