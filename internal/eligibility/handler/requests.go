package handler

import (
	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

const maxDiscoverTop = 50

// DiscoverRequest is the HTTP request body for POST /api/schemes/discover.
type DiscoverRequest struct {
	Citizen *domain.CitizenProfile `json:"citizen"`
	Top     int                    `json:"top,omitempty"`
}

// Validate implements httputil.Validatable.
func (r *DiscoverRequest) Validate() error {
	if r.Citizen == nil {
		return dErrors.New(dErrors.CodeValidation, "citizen profile is required")
	}
	if r.Top < 0 || r.Top > maxDiscoverTop {
		return dErrors.New(dErrors.CodeValidation, "top must be between 0 and 50")
	}
	return nil
}

// VerifyRequest is the HTTP request body for POST /api/schemes/{id}/verify.
type VerifyRequest struct {
	Citizen *domain.CitizenProfile `json:"citizen"`
}

// Validate implements httputil.Validatable.
func (r *VerifyRequest) Validate() error {
	if r.Citizen == nil {
		return dErrors.New(dErrors.CodeValidation, "citizen profile is required")
	}
	return nil
}

// ConflictsRequest is the HTTP request body for POST /api/schemes/conflicts.
type ConflictsRequest struct {
	SchemeIDs []string `json:"scheme_ids"`
}

// Validate implements httputil.Validatable.
func (r *ConflictsRequest) Validate() error {
	if len(r.SchemeIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "scheme_ids is required")
	}
	return nil
}
