package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/audit"
	dErrors "jansetu/pkg/domain-errors"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

const defaultLimit = 100

// Handler exposes the read side of the audit trail.
type Handler struct {
	store  audit.Store
	logger *slog.Logger
}

// New constructs an audit handler.
func New(store audit.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/audit/events", h.handleRecentEvents)
}

// EventListResponse is the payload for the recent events endpoint.
type EventListResponse struct {
	Events []*audit.Event `json:"events"`
	Total  int            `json:"total"`
}

func (h *Handler) handleRecentEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	events, err := h.store.Recent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read audit events",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to read audit events"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, EventListResponse{
		Events: events,
		Total:  len(events),
	})
}
