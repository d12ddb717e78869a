package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/audit"
)

func newTestHandler(t *testing.T) (chi.Router, *audit.InMemoryStore) {
	t.Helper()
	store := audit.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(store, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, store
}

func seedEvents(t *testing.T, store *audit.InMemoryStore, n int) {
	t.Helper()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, store.Append(context.Background(), &audit.Event{
			ID:        audit.NewEventID(),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Action:    "eligibility_check",
			Actor:     "api",
			CitizenID: "CIT-11111111",
			Outcome:   "success",
		}))
	}
}

func TestHandleRecentEvents(t *testing.T) {
	r, store := newTestHandler(t)
	seedEvents(t, store, 3)

	req := httptest.NewRequest(http.MethodGet, "/api/audit/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Events, 3)
	// Newest first.
	assert.True(t, resp.Events[0].Timestamp.After(resp.Events[2].Timestamp))
}

func TestHandleRecentEventsLimit(t *testing.T) {
	r, store := newTestHandler(t)
	seedEvents(t, store, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/audit/events?limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestHandleRecentEventsInvalidLimit(t *testing.T) {
	tests := []string{"0", "-3", "abc"}
	for _, limit := range tests {
		t.Run(limit, func(t *testing.T) {
			r, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/api/audit/events?limit="+limit, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleRecentEventsEmpty(t *testing.T) {
	r, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/audit/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}
