package eligibility

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"jansetu/internal/domain"
	"jansetu/internal/eligibility/metrics"
	"jansetu/internal/knowledge"
	dErrors "jansetu/pkg/domain-errors"
)

// Service evaluates scheme eligibility over the knowledge graph. The graph
// is immutable after startup, so the service is safe for concurrent use.
type Service struct {
	graph   *knowledge.Graph
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewService constructs an eligibility service.
func NewService(graph *knowledge.Graph, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		graph:   graph,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("jansetu/eligibility"),
	}
}

// Discover evaluates every scheme in the catalog against the citizen and
// returns all matches ranked best-first: eligible schemes before ineligible
// ones, and within each group by estimated benefit times approval
// probability. Ranks are assigned 1..N after sorting.
func (s *Service) Discover(ctx context.Context, citizen *domain.CitizenProfile) []*domain.SchemeMatch {
	ctx, span := s.tracer.Start(ctx, "eligibility.Discover")
	defer span.End()

	schemes := s.graph.Schemes()
	matches := make([]*domain.SchemeMatch, 0, len(schemes))
	for _, scheme := range schemes {
		matches = append(matches, s.evaluateScheme(scheme, citizen))
	}

	// Stable sort keeps catalog order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.IsEligible != b.IsEligible {
			return a.IsEligible
		}
		return a.EstimatedBenefit*a.ApprovalProbability > b.EstimatedBenefit*b.ApprovalProbability
	})
	for i, m := range matches {
		m.Rank = i + 1
	}

	eligible := 0
	for _, m := range matches {
		if m.IsEligible {
			eligible++
		}
	}
	span.SetAttributes(attribute.Int("eligible_count", eligible))
	s.metrics.ObserveDiscovery(len(matches), eligible)
	s.logger.InfoContext(ctx, "schemes discovered",
		"citizen_id", citizen.CitizenID,
		"total", len(matches),
		"eligible", eligible,
	)

	return matches
}

// Top returns the best n matches from a full discovery. n <= 0 yields nil.
func (s *Service) Top(ctx context.Context, citizen *domain.CitizenProfile, n int) []*domain.SchemeMatch {
	if n <= 0 {
		return nil
	}
	matches := s.Discover(ctx, citizen)
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Verify evaluates one scheme against the citizen.
// Returns CodeNotFound if the scheme is unknown.
func (s *Service) Verify(ctx context.Context, schemeID string, citizen *domain.CitizenProfile) (*domain.SchemeMatch, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.Verify",
		trace.WithAttributes(attribute.String("scheme_id", schemeID)))
	defer span.End()

	scheme, ok := s.graph.Scheme(schemeID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID)
	}

	match := s.evaluateScheme(scheme, citizen)
	s.metrics.IncrementVerification(schemeID, match.IsEligible)
	s.logger.InfoContext(ctx, "eligibility verified",
		"citizen_id", citizen.CitizenID,
		"scheme_id", schemeID,
		"eligible", match.IsEligible,
		"score", match.EligibilityScore,
	)
	return match, nil
}

// FindBenefitChain returns the schemes unlocked by completing schemeID,
// as (id, name) pairs in traversal order.
// Returns CodeNotFound if the scheme is unknown.
func (s *Service) FindBenefitChain(ctx context.Context, schemeID string) ([]ChainLink, error) {
	_, span := s.tracer.Start(ctx, "eligibility.FindBenefitChain",
		trace.WithAttributes(attribute.String("scheme_id", schemeID)))
	defer span.End()

	if _, ok := s.graph.Scheme(schemeID); !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID)
	}

	var chain []ChainLink
	for _, id := range s.graph.BenefitChain(schemeID) {
		link := ChainLink{SchemeID: id}
		if sch, ok := s.graph.Scheme(id); ok {
			link.Name = sch.Name
			link.BenefitAmount = sch.BenefitAmount
		}
		chain = append(chain, link)
	}
	return chain, nil
}

// ChainLink is one scheme in a benefit chain.
type ChainLink struct {
	SchemeID      string  `json:"scheme_id"`
	Name          string  `json:"name"`
	BenefitAmount float64 `json:"benefit_amount"`
}

// DetectConflicts reports mutually exclusive pairs among the given scheme
// IDs. Unknown IDs are ignored; they cannot conflict with anything.
func (s *Service) DetectConflicts(ctx context.Context, schemeIDs []string) []domain.ConflictPair {
	_, span := s.tracer.Start(ctx, "eligibility.DetectConflicts")
	defer span.End()

	return s.graph.DetectConflicts(schemeIDs)
}

// GraphStats exposes knowledge graph size counters.
func (s *Service) GraphStats(ctx context.Context) knowledge.Stats {
	return s.graph.Stats()
}

// evaluateScheme runs every rule of one scheme against the citizen and
// assembles the match. Rules with malformed values are reported in
// EvaluationErrors and block eligibility without counting as failed.
func (s *Service) evaluateScheme(scheme *domain.Scheme, citizen *domain.CitizenProfile) *domain.SchemeMatch {
	match := &domain.SchemeMatch{
		Scheme:           scheme,
		MatchedRules:     []string{},
		FailedRules:      []string{},
		MissingDocuments: []string{},
		EstimatedBenefit: scheme.BenefitAmount,
	}

	for _, rule := range scheme.EligibilityRules {
		label := rule.Description
		if label == "" {
			label = rule.ID
		}
		ok, err := EvaluateRule(rule, citizen)
		switch {
		case err != nil:
			match.EvaluationErrors = append(match.EvaluationErrors, err.Error())
		case ok:
			match.MatchedRules = append(match.MatchedRules, label)
		default:
			match.FailedRules = append(match.FailedRules, label)
		}
	}

	total := len(scheme.EligibilityRules)
	score := 1.0
	if total > 0 {
		score = float64(len(match.MatchedRules)) / float64(total)
	}
	match.EligibilityScore = round2(score)
	match.IsEligible = len(match.FailedRules) == 0 && len(match.EvaluationErrors) == 0
	match.ApprovalProbability = round2(score * scheme.ApprovalRate)

	for _, doc := range scheme.RequiredDocuments {
		if !citizen.HasDocument(doc) {
			match.MissingDocuments = append(match.MissingDocuments, doc)
		}
	}

	for _, cid := range scheme.ConflictsWith {
		if c, ok := s.graph.Scheme(cid); ok {
			match.Conflicts = append(match.Conflicts, c.Name)
		}
	}
	for _, uid := range s.graph.BenefitChain(scheme.ID) {
		if u, ok := s.graph.Scheme(uid); ok {
			match.Unlocks = append(match.Unlocks, u.Name)
		}
	}

	return match
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
