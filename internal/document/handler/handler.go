package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/document"
	"jansetu/internal/domain"
	"jansetu/pkg/platform/httputil"
	"jansetu/pkg/requestcontext"
)

// Service defines the interface for document operations.
type Service interface {
	Process(ctx context.Context, citizenID string, docType domain.DocumentType, fileName string) *domain.Document
}

// Handler wires document endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a document handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts document endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/documents/process", h.handleProcess)
	r.Post("/api/documents/redact", h.handleRedact)
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ProcessDocumentRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	doc := h.service.Process(ctx, req.CitizenID, req.DocumentType, req.FileName)

	h.logger.InfoContext(ctx, "document processing handled",
		"request_id", requestID,
		"document_id", doc.ID,
		"document_type", req.DocumentType,
		"status", doc.AuthenticityStatus,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) handleRedact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RedactRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, RedactResponse{
		RedactedText: document.RedactPII(req.Text),
	})
}
