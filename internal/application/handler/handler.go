package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/appeals"
	"jansetu/internal/domain"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

// Service defines the interface for application operations.
type Service interface {
	Submit(ctx context.Context, citizenID, schemeID string) (*domain.Application, error)
	PollStatus(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByCitizen(ctx context.Context, citizenID string) ([]*domain.Application, error)
	Appeal(ctx context.Context, applicationID, language string) (*domain.Application, *appeals.Letter, error)
	PrefilledForm(ctx context.Context, citizenID, schemeID string) (*domain.PrefilledForm, error)
}

// Handler wires application endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an application handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/applications", h.handleSubmit)
	r.Post("/api/applications/prefill", h.handlePrefill)
	r.Get("/api/applications/{applicationID}", h.handleStatus)
	r.Post("/api/applications/{applicationID}/appeal", h.handleAppeal)
	r.Get("/api/citizens/{citizenID}/applications", h.handleListByCitizen)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitApplicationRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	app, err := h.service.Submit(ctx, req.CitizenID, req.SchemeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "application submission failed",
			"request_id", requestID,
			"citizen_id", req.CitizenID,
			"scheme_id", req.SchemeID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application submission handled",
		"request_id", requestID,
		"application_id", app.ID,
		"status", app.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, app)
}

// handleStatus returns the application after advancing its simulated review.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "applicationID")

	app, err := h.service.PollStatus(r.Context(), applicationID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) handleListByCitizen(w http.ResponseWriter, r *http.Request) {
	citizenID := chi.URLParam(r, "citizenID")

	apps, err := h.service.ListByCitizen(r.Context(), citizenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ApplicationListResponse{
		Applications: apps,
		Total:        len(apps),
	})
}

func (h *Handler) handleAppeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	applicationID := chi.URLParam(r, "applicationID")

	req, ok := httputil.DecodeAndPrepare[AppealRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	app, letter, err := h.service.Appeal(ctx, applicationID, req.Language)
	if err != nil {
		h.logger.ErrorContext(ctx, "appeal failed",
			"request_id", requestID,
			"application_id", applicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, AppealResponse{
		Application: app,
		Letter:      letter,
	})
}

func (h *Handler) handlePrefill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PrefillRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	form, err := h.service.PrefilledForm(ctx, req.CitizenID, req.SchemeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, form)
}
