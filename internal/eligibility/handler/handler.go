package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/domain"
	"jansetu/internal/eligibility"
	"jansetu/internal/knowledge"
	dErrors "jansetu/pkg/domain-errors"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	Discover(ctx context.Context, citizen *domain.CitizenProfile) []*domain.SchemeMatch
	Top(ctx context.Context, citizen *domain.CitizenProfile, n int) []*domain.SchemeMatch
	Verify(ctx context.Context, schemeID string, citizen *domain.CitizenProfile) (*domain.SchemeMatch, error)
	FindBenefitChain(ctx context.Context, schemeID string) ([]eligibility.ChainLink, error)
	DetectConflicts(ctx context.Context, schemeIDs []string) []domain.ConflictPair
	GraphStats(ctx context.Context) knowledge.Stats
}

// SchemeReader exposes catalog lookups for the read-only endpoints.
type SchemeReader interface {
	Schemes() []*domain.Scheme
	Scheme(id string) (*domain.Scheme, bool)
}

// Handler wires scheme and eligibility endpoints to the service.
type Handler struct {
	service Service
	reader  SchemeReader
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, reader SchemeReader, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		reader:  reader,
		logger:  logger,
	}
}

// Register mounts scheme endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/schemes", h.handleListSchemes)
	r.Get("/api/schemes/graph/stats", h.handleGraphStats)
	r.Post("/api/schemes/discover", h.handleDiscover)
	r.Post("/api/schemes/conflicts", h.handleConflicts)
	r.Get("/api/schemes/{schemeID}", h.handleGetScheme)
	r.Get("/api/schemes/{schemeID}/chain", h.handleBenefitChain)
	r.Post("/api/schemes/{schemeID}/verify", h.handleVerify)
}

func (h *Handler) handleListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes := h.reader.Schemes()
	httputil.WriteJSON(w, http.StatusOK, SchemeListResponse{
		Schemes: schemes,
		Total:   len(schemes),
	})
}

func (h *Handler) handleGetScheme(w http.ResponseWriter, r *http.Request) {
	schemeID := chi.URLParam(r, "schemeID")
	scheme, ok := h.reader.Scheme(schemeID)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, scheme)
}

func (h *Handler) handleGraphStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.GraphStats(r.Context()))
}

func (h *Handler) handleDiscover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[DiscoverRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	var matches []*domain.SchemeMatch
	if req.Top > 0 {
		matches = h.service.Top(ctx, req.Citizen, req.Top)
	} else {
		matches = h.service.Discover(ctx, req.Citizen)
	}

	h.logger.InfoContext(ctx, "scheme discovery handled",
		"request_id", requestID,
		"citizen_id", req.Citizen.CitizenID,
		"matches", len(matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, DiscoverResponse{
		Matches: matches,
		Total:   len(matches),
	})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	schemeID := chi.URLParam(r, "schemeID")

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	match, err := h.service.Verify(ctx, schemeID, req.Citizen)
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility verification failed",
			"request_id", requestID,
			"scheme_id", schemeID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, match)
}

func (h *Handler) handleBenefitChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	schemeID := chi.URLParam(r, "schemeID")

	chain, err := h.service.FindBenefitChain(ctx, schemeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, BenefitChainResponse{
		SchemeID: schemeID,
		Unlocks:  chain,
		Hops:     knowledge.MaxChainHops,
	})
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ConflictsRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	pairs := h.service.DetectConflicts(ctx, req.SchemeIDs)
	httputil.WriteJSON(w, http.StatusOK, ConflictsResponse{
		Conflicts:    pairs,
		HasConflicts: len(pairs) > 0,
	})
}
