// Package appeals analyzes rejected applications and drafts formal appeal
// letters citing the relevant legal precedent.
package appeals

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
	"jansetu/pkg/requestcontext"
)

// Rejection categories recognized by the analyzer.
const (
	CategoryDocumentDiscrepancy = "document_discrepancy"
	CategoryIncomeMismatch      = "income_mismatch"
	CategoryProcessingDelay     = "processing_delay"
	CategoryAgeCutoff           = "age_cutoff"
	CategoryGeneric             = "generic"
)

// precedents are the RTI-backed arguments cited per rejection category.
var precedents = map[string]string{
	CategoryDocumentDiscrepancy: "As per the Right to Information Act, 2005, and the Supreme Court directive " +
		"in Unique Identification Authority of India v. CBI (2014), minor discrepancies " +
		"in government records should not be grounds for denial of welfare benefits.",
	CategoryIncomeMismatch: "The Delhi High Court in Radheshyam v. Union of India (2019) held that income " +
		"certificates should be given primacy over self-declared income when both are on record.",
	CategoryProcessingDelay: "DARPG guidelines mandate that government departments process welfare applications " +
		"within the prescribed timeline. Unreasonable delays constitute denial of citizen rights.",
	CategoryAgeCutoff: "The Supreme Court in Ashoka Kumar Thakur v. Union of India (2008) established that " +
		"age should be computed as of the last date of application submission, not the date of processing.",
	CategoryGeneric: "Article 14 of the Constitution of India guarantees equality before law. Denial of " +
		"welfare benefits without providing a reasoned order is a violation of principles of natural justice.",
}

// viabilityBase is the appeal success estimate per category, before the
// submitted-documents bonus.
var viabilityBase = map[string]float64{
	CategoryDocumentDiscrepancy: 0.75,
	CategoryIncomeMismatch:      0.60,
	CategoryProcessingDelay:     0.85,
	CategoryAgeCutoff:           0.50,
	CategoryGeneric:             0.45,
}

// Analysis is the rejection assessment backing an appeal.
type Analysis struct {
	ApplicationID     string  `json:"application_id"`
	SchemeName        string  `json:"scheme_name"`
	RejectionReason   string  `json:"rejection_reason"`
	Category          string  `json:"rejection_category"`
	ViabilityScore    float64 `json:"appeal_viability"`
	ViabilityLabel    string  `json:"viability_label"`
	RecommendedAction string  `json:"recommended_action"`
	Precedent         string  `json:"relevant_precedent"`
	TimeLimit         string  `json:"time_limit"`
}

// Letter is a generated appeal letter with its analysis attached.
type Letter struct {
	LetterID      string    `json:"letter_id"`
	ApplicationID string    `json:"application_id"`
	Language      string    `json:"language"`
	Text          string    `json:"letter_text"`
	GeneratedAt   time.Time `json:"generated_at"`
	WordCount     int       `json:"word_count"`
	Analysis      *Analysis `json:"analysis,omitempty"`
}

// Service analyzes rejections and generates appeal letters.
type Service struct {
	logger *slog.Logger
}

// NewService constructs an appeals service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Analyze categorizes a rejection and estimates appeal viability. Having
// submitted documents on record earns a bonus, capped at 1.0.
func (s *Service) Analyze(app *domain.Application, scheme *domain.Scheme) *Analysis {
	reason := app.RejectionReason
	if reason == "" {
		reason = "No specific reason provided"
	}

	category := categorizeReason(reason)
	score := viabilityBase[category]
	if len(app.DocumentsSubmitted) > 0 {
		score = min(score+0.10, 1.0)
	}
	score = round2(score)

	schemeName := app.SchemeID
	if scheme != nil {
		schemeName = scheme.Name
	}

	label := "Low"
	switch {
	case score >= 0.7:
		label = "High"
	case score >= 0.4:
		label = "Medium"
	}

	action := "Consider re-applying with corrected documents"
	if score >= 0.4 {
		action = "File an appeal with supporting documents"
	}

	return &Analysis{
		ApplicationID:     app.ID,
		SchemeName:        schemeName,
		RejectionReason:   reason,
		Category:          category,
		ViabilityScore:    score,
		ViabilityLabel:    label,
		RecommendedAction: action,
		Precedent:         precedents[category],
		TimeLimit:         "30 days from rejection date",
	}
}

// GenerateLetter writes a formal appeal letter in English or Hindi.
func (s *Service) GenerateLetter(ctx context.Context, app *domain.Application, citizen *domain.CitizenProfile, scheme *domain.Scheme, language string) (*Letter, error) {
	if language == "" {
		language = "english"
	}
	if language != "english" && language != "hindi" {
		return nil, dErrors.New(dErrors.CodeValidation, "language must be english or hindi")
	}

	analysis := s.Analyze(app, scheme)
	now := requestcontext.Now(ctx)

	ministry := "Concerned Ministry"
	if scheme != nil && scheme.Ministry != "" {
		ministry = scheme.Ministry
	}

	text, err := renderLetter(language, letterFields{
		CitizenName:     citizen.Name,
		City:            valueOr(citizen.Address.City, "N/A"),
		State:           citizen.Address.State,
		SchemeName:      analysis.SchemeName,
		Ministry:        ministry,
		ApplicationID:   app.ID,
		RejectionReason: analysis.RejectionReason,
		Precedent:       analysis.Precedent,
		Category:        strings.ToUpper(string(citizen.CasteCategory)),
		AnnualIncome:    fmt.Sprintf("%.0f", citizen.AnnualIncome),
		MaskedAadhaar:   maskAadhaar(citizen.AadhaarNumber),
		Date:            now.Format("02/01/2006"),
	})
	if err != nil {
		return nil, fmt.Errorf("render appeal letter: %w", err)
	}

	letter := &Letter{
		LetterID:      newLetterID(),
		ApplicationID: app.ID,
		Language:      language,
		Text:          text,
		GeneratedAt:   now,
		WordCount:     len(strings.Fields(text)),
		Analysis:      analysis,
	}

	s.logger.InfoContext(ctx, "appeal letter generated",
		"letter_id", letter.LetterID,
		"application_id", app.ID,
		"language", language,
		"category", analysis.Category,
	)
	return letter, nil
}

func categorizeReason(reason string) string {
	lower := strings.ToLower(reason)
	switch {
	case containsAny(lower, "document", "missing", "incomplete", "discrepancy"):
		return CategoryDocumentDiscrepancy
	case containsAny(lower, "income", "salary", "earning"):
		return CategoryIncomeMismatch
	case containsAny(lower, "delay", "timeout", "processing"):
		return CategoryProcessingDelay
	case containsAny(lower, "age", "overaged", "underage"):
		return CategoryAgeCutoff
	default:
		return CategoryGeneric
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func maskAadhaar(aadhaar string) string {
	if len(aadhaar) < 4 {
		return "XXXX-XXXX-XXXX"
	}
	return "XXXX-XXXX-" + aadhaar[len(aadhaar)-4:]
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func newLetterID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "APL-" + strings.ToUpper(raw[:8])
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
