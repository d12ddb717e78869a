package handler

import (
	"encoding/json"

	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

const maxBatchSchemes = 20

// ScoreRequest is the HTTP request body for POST /api/risk/score.
// Corrections, when present, are merged onto the profile before scoring.
type ScoreRequest struct {
	Citizen     *domain.CitizenProfile     `json:"citizen"`
	SchemeID    string                     `json:"scheme_id"`
	Corrections map[string]json.RawMessage `json:"corrections,omitempty"`
}

// Validate implements httputil.Validatable.
func (r *ScoreRequest) Validate() error {
	if r.Citizen == nil {
		return dErrors.New(dErrors.CodeValidation, "citizen profile is required")
	}
	if r.SchemeID == "" {
		return dErrors.New(dErrors.CodeValidation, "scheme_id is required")
	}
	return nil
}

// BatchScoreRequest is the HTTP request body for POST /api/risk/batch.
type BatchScoreRequest struct {
	Citizen   *domain.CitizenProfile `json:"citizen"`
	SchemeIDs []string               `json:"scheme_ids"`
}

// Validate implements httputil.Validatable.
func (r *BatchScoreRequest) Validate() error {
	if r.Citizen == nil {
		return dErrors.New(dErrors.CodeValidation, "citizen profile is required")
	}
	if len(r.SchemeIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "scheme_ids is required")
	}
	if len(r.SchemeIDs) > maxBatchSchemes {
		return dErrors.New(dErrors.CodeValidation, "scheme_ids must have at most 20 entries")
	}
	return nil
}

// ScoreResponse is the body for POST /api/risk/score.
type ScoreResponse struct {
	SchemeID string                    `json:"scheme_id"`
	Analysis *domain.RejectionAnalysis `json:"analysis"`
}

// BatchScoreResponse is the body for POST /api/risk/batch.
type BatchScoreResponse struct {
	Results map[string]*domain.RejectionAnalysis `json:"results"`
	Total   int                                  `json:"total"`
}
