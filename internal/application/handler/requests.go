package handler

import (
	dErrors "jansetu/pkg/domain-errors"
)

// SubmitApplicationRequest files an application for a citizen and scheme.
type SubmitApplicationRequest struct {
	CitizenID string `json:"citizen_id"`
	SchemeID  string `json:"scheme_id"`
}

// Validate checks the submission payload.
func (r *SubmitApplicationRequest) Validate() error {
	if r.CitizenID == "" {
		return dErrors.New(dErrors.CodeValidation, "citizen_id is required")
	}
	if r.SchemeID == "" {
		return dErrors.New(dErrors.CodeValidation, "scheme_id is required")
	}
	return nil
}

// AppealRequest asks for an appeal letter on a rejected application.
type AppealRequest struct {
	Language string `json:"language,omitempty"`
}

// Validate checks the appeal payload. Language is validated downstream so
// the service owns the supported set.
func (r *AppealRequest) Validate() error {
	return nil
}

// PrefillRequest asks for a portal-ready form for a citizen and scheme.
type PrefillRequest struct {
	CitizenID string `json:"citizen_id"`
	SchemeID  string `json:"scheme_id"`
}

// Validate checks the prefill payload.
func (r *PrefillRequest) Validate() error {
	if r.CitizenID == "" {
		return dErrors.New(dErrors.CodeValidation, "citizen_id is required")
	}
	if r.SchemeID == "" {
		return dErrors.New(dErrors.CodeValidation, "scheme_id is required")
	}
	return nil
}
