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

	"jansetu/internal/appeals"
	"jansetu/internal/application/handler/mocks"
	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/application-mocks.go -package=mocks Service

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

func TestHandleSubmit(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), "CIT-11111111", "atal_pension").
		Return(&domain.Application{
			ID:       "APP-A1B2C3D4",
			SchemeID: "atal_pension",
			Status:   domain.StatusSubmitted,
		}, nil)

	body := `{"citizen_id":"CIT-11111111","scheme_id":"atal_pension"}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APP-A1B2C3D4", resp.ID)
}

func TestHandleSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing citizen_id", body: `{"scheme_id":"atal_pension"}`},
		{name: "missing scheme_id", body: `{"citizen_id":"CIT-11111111"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleStatus(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		PollStatus(gomock.Any(), "APP-A1B2C3D4").
		Return(&domain.Application{ID: "APP-A1B2C3D4", Status: domain.StatusUnderReview}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/APP-A1B2C3D4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusUnderReview, resp.Status)
}

func TestHandleStatusNotFound(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		PollStatus(gomock.Any(), "APP-MISSING").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "application not found: APP-MISSING"))

	req := httptest.NewRequest(http.MethodGet, "/api/applications/APP-MISSING", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListByCitizen(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		ListByCitizen(gomock.Any(), "CIT-11111111").
		Return([]*domain.Application{
			{ID: "APP-00000001"},
			{ID: "APP-00000002"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/citizens/CIT-11111111/applications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ApplicationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestHandleAppeal(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		Appeal(gomock.Any(), "APP-A1B2C3D4", "hindi").
		Return(
			&domain.Application{ID: "APP-A1B2C3D4", Status: domain.StatusAppealed},
			&appeals.Letter{LetterID: "APL-00000001", Language: "hindi"},
			nil,
		)

	body := `{"language":"hindi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications/APP-A1B2C3D4/appeal", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AppealResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusAppealed, resp.Application.Status)
	assert.Equal(t, "hindi", resp.Letter.Language)
}

func TestHandleAppealConflict(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		Appeal(gomock.Any(), "APP-A1B2C3D4", "").
		Return(nil, nil, dErrors.New(dErrors.CodeConflict, "application APP-A1B2C3D4 is submitted, only rejected applications can be appealed"))

	req := httptest.NewRequest(http.MethodPost, "/api/applications/APP-A1B2C3D4/appeal", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlePrefill(t *testing.T) {
	r, mockService := newTestHandler(t)

	mockService.EXPECT().
		PrefilledForm(gomock.Any(), "CIT-11111111", "atal_pension").
		Return(&domain.PrefilledForm{
			SchemeID: "atal_pension",
			Fields:   map[string]string{"aadhaar_number": "XXXX-XXXX-9012"},
		}, nil)

	body := `{"citizen_id":"CIT-11111111","scheme_id":"atal_pension"}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications/prefill", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.PrefilledForm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "XXXX-XXXX-9012", resp.Fields["aadhaar_number"])
}
