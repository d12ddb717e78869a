package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/domain"
)

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog(Catalog()))
}

func TestValidateCatalogRejectsBadData(t *testing.T) {
	valid := func() *domain.Scheme {
		return &domain.Scheme{
			ID:            "s1",
			Name:          "Scheme One",
			ApprovalRate:  0.8,
			ExecutionTier: 1,
			EligibilityRules: []domain.EligibilityRule{
				{ID: "r1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Scheme) []*domain.Scheme
		wantErr string
	}{
		{
			name: "duplicate scheme ID",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				return []*domain.Scheme{s, valid()}
			},
			wantErr: "duplicate scheme ID",
		},
		{
			name: "approval rate out of range",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				s.ApprovalRate = 1.4
				return []*domain.Scheme{s}
			},
			wantErr: "approval rate",
		},
		{
			name: "execution tier out of range",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				s.ExecutionTier = 4
				return []*domain.Scheme{s}
			},
			wantErr: "execution tier",
		},
		{
			name: "duplicate rule ID",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				s.EligibilityRules = append(s.EligibilityRules, domain.EligibilityRule{ID: "r1"})
				return []*domain.Scheme{s}
			},
			wantErr: "duplicate rule ID",
		},
		{
			name: "non-integer age threshold",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				s.EligibilityRules[0].Value = "eighteen"
				return []*domain.Scheme{s}
			},
			wantErr: "non-integer",
		},
		{
			name: "dependency on unknown scheme",
			mutate: func(s *domain.Scheme) []*domain.Scheme {
				s.DependsOn = []string{"ghost"}
				return []*domain.Scheme{s}
			},
			wantErr: "unknown scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog(tt.mutate(valid()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
