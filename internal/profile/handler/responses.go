package handler

import "jansetu/internal/profile"

// ConflictsResponse reports field conflicts between stored and new data.
type ConflictsResponse struct {
	CitizenID    string                  `json:"citizen_id"`
	Conflicts    []profile.FieldConflict `json:"conflicts"`
	HasConflicts bool                    `json:"has_conflicts"`
}
