package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"jansetu/internal/appeals"
	"jansetu/internal/application/metrics"
	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
	"jansetu/pkg/platform/sentinel"
	"jansetu/pkg/requestcontext"
)

const (
	maxAttempts = 3
	maxTier     = 3

	submissionActor = "execution"
)

// tierSuccessRates simulate portal reliability per submission channel.
// The PDF tier is most reliable because it only generates a form.
var tierSuccessRates = map[int]float64{1: 0.90, 2: 0.80, 3: 0.95}

var tierActions = map[int]string{
	1: "API submission to portal",
	2: "Web automation form-fill",
	3: "PDF generation and upload",
}

// SchemeReader exposes catalog lookups.
type SchemeReader interface {
	Scheme(id string) (*domain.Scheme, bool)
}

// ProfileReader fetches citizen profiles for the appeal path.
type ProfileReader interface {
	Get(ctx context.Context, citizenID string) (*domain.CitizenProfile, error)
}

// Randomizer drives the simulated submission outcomes. Injectable so tests
// pin the dice.
type Randomizer interface {
	Float64() float64
}

// Service submits applications over the tiered channels and tracks them.
type Service struct {
	schemes  SchemeReader
	profiles ProfileReader
	appeals  *appeals.Service
	store    Store
	rng      Randomizer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// NewService constructs an application service. A seeded *rand.Rand
// satisfies the Randomizer.
func NewService(schemes SchemeReader, profiles ProfileReader, appealsSvc *appeals.Service, store Store, rng Randomizer, logger *slog.Logger, m *metrics.Metrics) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Service{
		schemes:  schemes,
		profiles: profiles,
		appeals:  appealsSvc,
		store:    store,
		rng:      rng,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("jansetu/application"),
	}
}

// Submit files an application for a scheme through its execution tier,
// retrying up to three attempts per tier and falling back to the next tier
// when one is exhausted. Every attempt lands in the audit trail. If all
// tiers fail the application stays in draft for manual submission.
func (s *Service) Submit(ctx context.Context, citizenID, schemeID string) (*domain.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Submit")
	defer span.End()

	citizen, err := s.profiles.Get(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	scheme, ok := s.schemes.Scheme(schemeID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID)
	}

	now := requestcontext.Now(ctx)
	decision := now.AddDate(0, 0, scheme.ProcessingDays)

	app := &domain.Application{
		ID:                 newApplicationID(),
		CitizenID:          citizen.CitizenID,
		SchemeID:           schemeID,
		SchemeName:         scheme.Name,
		Status:             domain.StatusDraft,
		ExecutionTier:      scheme.ExecutionTier,
		PortalURL:          scheme.PortalURL,
		BenefitAmount:      scheme.BenefitAmount,
		DocumentsSubmitted: heldDocuments(citizen, scheme),
		ExpectedDecision:   &decision,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	attempts := 0
	submitted := false
	for tier := scheme.ExecutionTier; tier <= maxTier && !submitted; tier++ {
		app.ExecutionTier = tier
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			attempts++
			if s.attemptTier(ctx, app, tier, attempt) {
				submitted = true
				break
			}
		}
		if !submitted && tier < maxTier {
			s.metrics.IncrementFallback()
			app.AddAudit(domain.AuditEntry{
				Timestamp: requestcontext.Now(ctx),
				Action:    fmt.Sprintf("Tier fallback to Tier %d", tier+1),
				Actor:     submissionActor,
				Details:   fmt.Sprintf("Falling back from Tier %d to Tier %d", tier, tier+1),
				Success:   true,
			})
		}
	}

	if submitted {
		app.Status = domain.StatusSubmitted
		submittedAt := requestcontext.Now(ctx)
		app.SubmissionDate = &submittedAt
	} else {
		app.AddAudit(domain.AuditEntry{
			Timestamp: requestcontext.Now(ctx),
			Action:    "Submission failed",
			Actor:     submissionActor,
			Details:   "All tiers exhausted. Application saved as draft for manual submission.",
			Success:   false,
		})
	}

	if err := s.store.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	s.metrics.IncrementSubmission(schemeID, string(app.Status))
	s.metrics.ObserveAttempts(attempts)
	span.SetAttributes(
		attribute.String("scheme.id", schemeID),
		attribute.String("application.status", string(app.Status)),
		attribute.Int("application.attempts", attempts),
	)
	s.logger.InfoContext(ctx, "application submitted",
		"application_id", app.ID,
		"scheme_id", schemeID,
		"status", app.Status,
		"tier", app.ExecutionTier,
		"attempts", attempts,
	)
	return app, nil
}

func (s *Service) attemptTier(ctx context.Context, app *domain.Application, tier, attempt int) bool {
	action := tierActions[tier]
	entry := domain.AuditEntry{
		Timestamp: requestcontext.Now(ctx),
		Action:    fmt.Sprintf("Tier %d submission attempt %d", tier, attempt),
		Actor:     submissionActor,
		PortalURL: app.PortalURL,
	}

	if s.rng.Float64() < tierSuccessRates[tier] {
		app.ConfirmationNumber = newConfirmationNumber()
		entry.Details = fmt.Sprintf("%s succeeded on attempt %d", action, attempt)
		entry.Success = true
		app.AddAudit(entry)
		return true
	}

	entry.Details = fmt.Sprintf("%s failed on attempt %d", action, attempt)
	entry.ErrorMessage = "Simulated transient failure: portal timeout"
	app.AddAudit(entry)
	return false
}

// Get fetches an application by ID.
func (s *Service) Get(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.store.Get(ctx, applicationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found: "+applicationID)
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// ListByCitizen returns all applications a citizen has filed.
func (s *Service) ListByCitizen(ctx context.Context, citizenID string) ([]*domain.Application, error) {
	apps, err := s.store.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// PollStatus fetches an application and advances its simulated review.
// Submitted applications may move to under review; applications under
// review may be approved or rejected.
func (s *Service) PollStatus(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.Get(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	switch app.Status {
	case domain.StatusSubmitted:
		if s.rng.Float64() < 0.3 {
			app.Status = domain.StatusUnderReview
			app.AddAudit(domain.AuditEntry{
				Timestamp: requestcontext.Now(ctx),
				Action:    "Status update",
				Actor:     submissionActor,
				Details:   "Application moved to under review by department",
				Success:   true,
			})
		}
	case domain.StatusUnderReview:
		switch roll := s.rng.Float64(); {
		case roll < 0.2:
			app.Status = domain.StatusApproved
			app.DisbursementInfo = "Benefit will be credited to linked bank account via DBT"
			app.AddAudit(domain.AuditEntry{
				Timestamp: requestcontext.Now(ctx),
				Action:    "Application approved",
				Actor:     submissionActor,
				Details:   "Application approved by competent authority",
				Success:   true,
			})
		case roll < 0.3:
			app.Status = domain.StatusRejected
			app.RejectionReason = "Document verification discrepancy found"
			rejectedAt := requestcontext.Now(ctx)
			app.RejectionDate = &rejectedAt
			app.AddAudit(domain.AuditEntry{
				Timestamp: rejectedAt,
				Action:    "Application rejected",
				Actor:     submissionActor,
				Details:   "Rejected: " + app.RejectionReason,
				Success:   false,
			})
		}
	}

	if err := s.store.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save polled application: %w", err)
	}
	return app, nil
}

// Appeal generates an appeal letter for a rejected application, attaches
// it and moves the application to appealed. Only rejected applications can
// be appealed.
func (s *Service) Appeal(ctx context.Context, applicationID, language string) (*domain.Application, *appeals.Letter, error) {
	app, err := s.Get(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if app.Status != domain.StatusRejected {
		return nil, nil, dErrors.New(dErrors.CodeConflict,
			fmt.Sprintf("application %s is %s, only rejected applications can be appealed", applicationID, app.Status))
	}

	citizen, err := s.profiles.Get(ctx, app.CitizenID)
	if err != nil {
		return nil, nil, err
	}
	scheme, _ := s.schemes.Scheme(app.SchemeID)

	letter, err := s.appeals.GenerateLetter(ctx, app, citizen, scheme, language)
	if err != nil {
		return nil, nil, err
	}

	app.Status = domain.StatusAppealed
	app.AppealLetter = letter.Text
	appealedAt := requestcontext.Now(ctx)
	app.AppealDate = &appealedAt
	app.AddAudit(domain.AuditEntry{
		Timestamp: appealedAt,
		Action:    "Appeal submitted",
		Actor:     "appeals",
		Details:   "Formal appeal letter submitted to competent authority",
		Success:   true,
	})

	if err := s.store.Save(ctx, app); err != nil {
		return nil, nil, fmt.Errorf("save appealed application: %w", err)
	}

	s.logger.InfoContext(ctx, "appeal filed",
		"application_id", app.ID,
		"language", letter.Language,
		"viability", letter.Analysis.ViabilityScore,
	)
	return app, letter, nil
}

// PrefilledForm builds a portal-ready form for a scheme from a citizen
// profile, masking the Aadhaar and bank account for display.
func (s *Service) PrefilledForm(ctx context.Context, citizenID, schemeID string) (*domain.PrefilledForm, error) {
	citizen, err := s.profiles.Get(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	scheme, ok := s.schemes.Scheme(schemeID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "scheme not found: "+schemeID)
	}

	fields := map[string]string{
		"full_name":      citizen.Name,
		"date_of_birth":  citizen.DateOfBirth,
		"aadhaar_number": maskAadhaar(citizen.AadhaarNumber),
		"address":        formatAddress(citizen.Address),
		"annual_income":  fmt.Sprintf("%.0f", citizen.AnnualIncome),
		"bank_account":   maskAccount(citizen.BankAccount),
		"category":       strings.ToUpper(string(citizen.CasteCategory)),
	}

	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	return &domain.PrefilledForm{
		SchemeID:      schemeID,
		SchemeName:    scheme.Name,
		PortalURL:     scheme.PortalURL,
		Fields:        fields,
		MissingFields: missing,
		Documents:     scheme.RequiredDocuments,
	}, nil
}

func heldDocuments(citizen *domain.CitizenProfile, scheme *domain.Scheme) []string {
	var held []string
	for _, doc := range scheme.RequiredDocuments {
		if citizen.HasDocument(doc) {
			held = append(held, doc)
		}
	}
	return held
}

func maskAadhaar(aadhaar string) string {
	if len(aadhaar) < 4 {
		return ""
	}
	return "XXXX-XXXX-" + aadhaar[len(aadhaar)-4:]
}

func maskAccount(account string) string {
	if len(account) < 4 {
		return ""
	}
	return "XXXX" + account[len(account)-4:]
}

func formatAddress(a domain.Address) string {
	parts := []string{a.Line1, a.City, a.State}
	var filled []string
	for _, p := range parts {
		if p != "" {
			filled = append(filled, p)
		}
	}
	out := strings.Join(filled, ", ")
	if a.Pincode != "" {
		out += " - " + a.Pincode
	}
	return out
}

func newApplicationID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "APP-" + strings.ToUpper(raw[:8])
}

func newConfirmationNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CONF-" + strings.ToUpper(raw[:10])
}
