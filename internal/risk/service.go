package risk

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"jansetu/internal/domain"
	"jansetu/internal/knowledge"
	"jansetu/internal/risk/metrics"
	dErrors "jansetu/pkg/domain-errors"
)

// highRiskBanner leads the recommendation list when the combined score
// lands in the high or critical band.
const highRiskBanner = "⚠ HIGH RISK — Address the following issues before submitting:"

const cscRecommendation = "Consider applying through a Common Service Centre (CSC) for assisted form-filling"

// batchConcurrency bounds parallel scheme scoring in BatchScore.
const batchConcurrency = 4

// Service produces rejection risk analyses by blending the rule-based
// scorer (60%) with the feature-weighted model (40%).
type Service struct {
	graph   *knowledge.Graph
	noise   NoiseSource
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewService constructs a risk service. noise may be ZeroNoise for
// deterministic output.
func NewService(graph *knowledge.Graph, noise NoiseSource, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		graph:   graph,
		noise:   noise,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("jansetu/risk"),
	}
}

// Score predicts rejection risk for one citizen and scheme.
// Returns CodeNotFound if the scheme is unknown.
func (s *Service) Score(ctx context.Context, citizen *domain.CitizenProfile, schemeID string) (*domain.RejectionAnalysis, error) {
	ctx, span := s.tracer.Start(ctx, "risk.Score",
		trace.WithAttributes(attribute.String("scheme_id", schemeID)))
	defer span.End()

	scheme, ok := s.graph.Scheme(schemeID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID)
	}

	analysis := s.score(citizen, scheme)

	span.SetAttributes(
		attribute.Float64("rejection_probability", analysis.RejectionProbability),
		attribute.String("risk_level", string(analysis.RiskLevel)),
	)
	s.metrics.IncrementScore(schemeID, string(analysis.RiskLevel))
	s.metrics.ObserveProbability(analysis.RejectionProbability)
	s.logger.InfoContext(ctx, "rejection risk scored",
		"citizen_id", citizen.CitizenID,
		"scheme_id", schemeID,
		"probability", analysis.RejectionProbability,
		"risk_level", analysis.RiskLevel,
	)

	return analysis, nil
}

// ScoreWithCorrections applies field corrections onto a copy of the profile
// and re-scores. Corrections are a JSON object keyed by profile field names;
// the stored profile is never mutated.
func (s *Service) ScoreWithCorrections(ctx context.Context, citizen *domain.CitizenProfile, schemeID string, corrections map[string]json.RawMessage) (*domain.RejectionAnalysis, error) {
	patched, err := applyCorrections(citizen, corrections)
	if err != nil {
		return nil, err
	}
	return s.Score(ctx, patched, schemeID)
}

// BatchScore predicts risk for several schemes concurrently. Unknown scheme
// IDs fail the whole batch with CodeNotFound.
func (s *Service) BatchScore(ctx context.Context, citizen *domain.CitizenProfile, schemeIDs []string) (map[string]*domain.RejectionAnalysis, error) {
	ctx, span := s.tracer.Start(ctx, "risk.BatchScore",
		trace.WithAttributes(attribute.Int("schemes", len(schemeIDs))))
	defer span.End()

	results := make(map[string]*domain.RejectionAnalysis, len(schemeIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, schemeID := range schemeIDs {
		g.Go(func() error {
			analysis, err := s.Score(ctx, citizen, schemeID)
			if err != nil {
				return err
			}
			mu.Lock()
			results[schemeID] = analysis
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// score blends both scorers and finalises the recommendation list.
func (s *Service) score(citizen *domain.CitizenProfile, scheme *domain.Scheme) *domain.RejectionAnalysis {
	analysis := RuleBasedScore(citizen, scheme)
	modelProb := FeatureScore(citizen, scheme, s.noise)

	combined := round2(analysis.RejectionProbability*0.6 + modelProb*0.4)
	analysis.RejectionProbability = combined
	analysis.RiskLevel = domain.RiskLevelFor(combined)

	if analysis.RiskLevel == domain.RiskHigh || analysis.RiskLevel == domain.RiskCritical {
		analysis.Recommendations = append([]string{highRiskBanner}, analysis.Recommendations...)
	}
	if combined > 0.5 {
		analysis.Recommendations = append(analysis.Recommendations, cscRecommendation)
	}

	return analysis
}

// applyCorrections merges a JSON patch onto a copy of the profile by
// marshalling the profile and overlaying the corrected fields.
func applyCorrections(citizen *domain.CitizenProfile, corrections map[string]json.RawMessage) (*domain.CitizenProfile, error) {
	raw, err := json.Marshal(citizen)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, "encode profile")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, "decode profile")
	}
	for field, value := range corrections {
		doc[field] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, "encode corrected profile")
	}

	var patched domain.CitizenProfile
	if err := json.Unmarshal(merged, &patched); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, "corrections do not match profile fields")
	}
	return &patched, nil
}
