package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

// Service defines the interface for risk scoring operations.
type Service interface {
	Score(ctx context.Context, citizen *domain.CitizenProfile, schemeID string) (*domain.RejectionAnalysis, error)
	ScoreWithCorrections(ctx context.Context, citizen *domain.CitizenProfile, schemeID string, corrections map[string]json.RawMessage) (*domain.RejectionAnalysis, error)
	BatchScore(ctx context.Context, citizen *domain.CitizenProfile, schemeIDs []string) (map[string]*domain.RejectionAnalysis, error)
}

// Handler wires risk endpoints to the risk service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a risk handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts risk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/risk/score", h.handleScore)
	r.Post("/api/risk/batch", h.handleBatchScore)
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ScoreRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	var analysis *domain.RejectionAnalysis
	var err error
	if len(req.Corrections) > 0 {
		analysis, err = h.service.ScoreWithCorrections(ctx, req.Citizen, req.SchemeID, req.Corrections)
	} else {
		analysis, err = h.service.Score(ctx, req.Citizen, req.SchemeID)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "risk scoring failed",
			"request_id", requestID,
			"scheme_id", req.SchemeID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "risk score handled",
		"request_id", requestID,
		"scheme_id", req.SchemeID,
		"risk_level", analysis.RiskLevel,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, ScoreResponse{
		SchemeID: req.SchemeID,
		Analysis: analysis,
	})
}

func (h *Handler) handleBatchScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BatchScoreRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	results, err := h.service.BatchScore(ctx, req.Citizen, req.SchemeIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch risk scoring failed",
			"request_id", requestID,
			"schemes", len(req.SchemeIDs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, BatchScoreResponse{
		Results: results,
		Total:   len(results),
	})
}
