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

	"jansetu/internal/document/handler/mocks"
	"jansetu/internal/domain"
)

//go:generate mockgen -source=handler.go -destination=mocks/document-mocks.go -package=mocks Service

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

func TestHandleProcess(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		Process(gomock.Any(), "CIT-11111111", domain.DocAadhaar, "").
		Return(&domain.Document{
			ID:                 "DOC-A1B2C3D4",
			CitizenID:          "CIT-11111111",
			DocumentType:       domain.DocAadhaar,
			AuthenticityStatus: domain.AuthVerified,
		})

	body := `{"citizen_id":"CIT-11111111","document_type":"aadhaar"}`
	req := httptest.NewRequest(http.MethodPost, "/api/documents/process", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DOC-A1B2C3D4", resp.ID)
	assert.Equal(t, domain.AuthVerified, resp.AuthenticityStatus)
}

func TestHandleProcessValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing citizen_id", body: `{"document_type":"aadhaar"}`},
		{name: "missing document_type", body: `{"citizen_id":"CIT-11111111"}`},
		{name: "malformed json", body: `{"citizen_id":`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/documents/process", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleRedact(t *testing.T) {
	r, _ := newTestHandler(t)

	body := `{"text":"PAN ABCDE1234F on record"}`
	req := httptest.NewRequest(http.MethodPost, "/api/documents/redact", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RedactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAN XXXXX0000X on record", resp.RedactedText)
}

func TestHandleRedactEmptyText(t *testing.T) {
	r, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/documents/redact", bytes.NewBufferString(`{"text":""}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
