package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/domain"
	"jansetu/internal/profile"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

// Service defines the interface for citizen profile operations.
type Service interface {
	Create(ctx context.Context, citizen *domain.CitizenProfile) (*domain.CitizenProfile, error)
	Get(ctx context.Context, citizenID string) (*domain.CitizenProfile, error)
	Update(ctx context.Context, citizenID string, updates map[string]json.RawMessage) (*domain.CitizenProfile, error)
	Delete(ctx context.Context, citizenID string) error
	ResolveConflicts(ctx context.Context, citizenID string, newData map[string]string) ([]profile.FieldConflict, error)
}

// Handler wires citizen profile endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a profile handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts citizen endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/citizens", h.handleCreate)
	r.Get("/api/citizens/{citizenID}", h.handleGet)
	r.Patch("/api/citizens/{citizenID}", h.handleUpdate)
	r.Delete("/api/citizens/{citizenID}", h.handleDelete)
	r.Post("/api/citizens/{citizenID}/conflicts", h.handleResolveConflicts)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CreateProfileRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	created, err := h.service.Create(ctx, req.Citizen)
	if err != nil {
		h.logger.ErrorContext(ctx, "profile creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "profile creation handled",
		"request_id", requestID,
		"citizen_id", created.CitizenID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	citizenID := chi.URLParam(r, "citizenID")

	citizen, err := h.service.Get(r.Context(), citizenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, citizen)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	citizenID := chi.URLParam(r, "citizenID")

	req, ok := httputil.DecodeAndPrepare[UpdateProfileRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	updated, err := h.service.Update(ctx, citizenID, req.Updates)
	if err != nil {
		h.logger.ErrorContext(ctx, "profile update failed",
			"request_id", requestID,
			"citizen_id", citizenID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	citizenID := chi.URLParam(r, "citizenID")

	if err := h.service.Delete(ctx, citizenID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "profile deletion handled",
		"request_id", requestID,
		"citizen_id", citizenID,
	)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResolveConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	citizenID := chi.URLParam(r, "citizenID")

	req, ok := httputil.DecodeAndPrepare[ResolveConflictsRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	conflicts, err := h.service.ResolveConflicts(ctx, citizenID, req.NewData)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ConflictsResponse{
		CitizenID:    citizenID,
		Conflicts:    conflicts,
		HasConflicts: len(conflicts) > 0,
	})
}
