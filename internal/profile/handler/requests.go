package handler

import (
	"encoding/json"

	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

// CreateProfileRequest is the payload for registering a citizen.
type CreateProfileRequest struct {
	Citizen *domain.CitizenProfile `json:"citizen"`
}

// Validate checks the create payload.
func (r *CreateProfileRequest) Validate() error {
	if r.Citizen == nil {
		return dErrors.New(dErrors.CodeValidation, "citizen is required")
	}
	if r.Citizen.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "citizen name is required")
	}
	return nil
}

// UpdateProfileRequest carries a partial profile update. Fields keep their
// raw JSON so only the supplied ones are merged.
type UpdateProfileRequest struct {
	Updates map[string]json.RawMessage `json:"updates"`
}

// Validate checks the update payload.
func (r *UpdateProfileRequest) Validate() error {
	if len(r.Updates) == 0 {
		return dErrors.New(dErrors.CodeValidation, "updates must not be empty")
	}
	return nil
}

// ResolveConflictsRequest carries newly extracted field values to compare
// against the stored profile.
type ResolveConflictsRequest struct {
	NewData map[string]string `json:"new_data"`
}

// Validate checks the conflict resolution payload.
func (r *ResolveConflictsRequest) Validate() error {
	if len(r.NewData) == 0 {
		return dErrors.New(dErrors.CodeValidation, "new_data must not be empty")
	}
	return nil
}
