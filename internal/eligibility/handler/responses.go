package handler

import (
	"jansetu/internal/domain"
	"jansetu/internal/eligibility"
)

// SchemeListResponse is the body for GET /api/schemes.
type SchemeListResponse struct {
	Schemes []*domain.Scheme `json:"schemes"`
	Total   int              `json:"total"`
}

// DiscoverResponse is the body for POST /api/schemes/discover.
type DiscoverResponse struct {
	Matches []*domain.SchemeMatch `json:"matches"`
	Total   int                   `json:"total"`
}

// BenefitChainResponse is the body for GET /api/schemes/{id}/chain.
type BenefitChainResponse struct {
	SchemeID string                  `json:"scheme_id"`
	Unlocks  []eligibility.ChainLink `json:"unlocks"`
	Hops     int                     `json:"max_hops"`
}

// ConflictsResponse is the body for POST /api/schemes/conflicts.
type ConflictsResponse struct {
	Conflicts    []domain.ConflictPair `json:"conflicts"`
	HasConflicts bool                  `json:"has_conflicts"`
}
