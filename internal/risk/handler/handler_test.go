package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jansetu/internal/domain"
	"jansetu/internal/risk/handler/mocks"
	dErrors "jansetu/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/risk-mocks.go -package=mocks Service

func newTestHandler(t *testing.T) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, mockService
}

func TestHandleScore(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().Score(gomock.Any(), gomock.Any(), "atal_pension").Return(&domain.RejectionAnalysis{
		RejectionProbability: 0.12,
		RiskLevel:            domain.RiskLow,
	}, nil)

	body := []byte(`{"citizen":{"citizen_id":"CIT-1"},"scheme_id":"atal_pension"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/risk/score", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "atal_pension", resp.SchemeID)
	assert.Equal(t, domain.RiskLow, resp.Analysis.RiskLevel)
}

func TestHandleScoreWithCorrections(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().ScoreWithCorrections(gomock.Any(), gomock.Any(), "atal_pension", gomock.Any()).
		Return(&domain.RejectionAnalysis{RejectionProbability: 0.08, RiskLevel: domain.RiskLow}, nil)

	body := []byte(`{"citizen":{"citizen_id":"CIT-1"},"scheme_id":"atal_pension","corrections":{"aadhaar_number":"234512345678"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/risk/score", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleScoreValidation(t *testing.T) {
	r, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing citizen", `{"scheme_id":"atal_pension"}`},
		{"missing scheme id", `{"citizen":{}}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/risk/score", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleScoreUnknownScheme(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().Score(gomock.Any(), gomock.Any(), "ghost").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: ghost"))

	body := []byte(`{"citizen":{},"scheme_id":"ghost"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/risk/score", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleBatchScore(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().BatchScore(gomock.Any(), gomock.Any(), []string{"pm_kisan", "atal_pension"}).
		Return(map[string]*domain.RejectionAnalysis{
			"pm_kisan":     {RejectionProbability: 0.2, RiskLevel: domain.RiskLow},
			"atal_pension": {RejectionProbability: 0.55, RiskLevel: domain.RiskHigh},
		}, nil)

	body := []byte(`{"citizen":{"citizen_id":"CIT-1"},"scheme_ids":["pm_kisan","atal_pension"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/risk/batch", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BatchScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, domain.RiskHigh, resp.Results["atal_pension"].RiskLevel)
}

func TestHandleBatchScoreValidation(t *testing.T) {
	r, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/risk/batch", bytes.NewBufferString(`{"citizen":{},"scheme_ids":[]}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
