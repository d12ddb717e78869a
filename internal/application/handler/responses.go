package handler

import (
	"jansetu/internal/appeals"
	"jansetu/internal/domain"
)

// ApplicationListResponse lists a citizen's applications.
type ApplicationListResponse struct {
	Applications []*domain.Application `json:"applications"`
	Total        int                   `json:"total"`
}

// AppealResponse carries the appealed application and the generated letter.
type AppealResponse struct {
	Application *domain.Application `json:"application"`
	Letter      *appeals.Letter     `json:"letter"`
}
