package appeals

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func rejectedApplication(reason string) *domain.Application {
	return &domain.Application{
		ID:              "APP-11111111",
		CitizenID:       "CIT-11111111",
		SchemeID:        "atal_pension",
		SchemeName:      "Atal Pension Yojana",
		Status:          domain.StatusRejected,
		RejectionReason: reason,
	}
}

func testCitizen() *domain.CitizenProfile {
	return &domain.CitizenProfile{
		CitizenID:     "CIT-11111111",
		Name:          "Ramesh Kumar",
		AadhaarNumber: "123456789012",
		AnnualIncome:  170000,
		CasteCategory: domain.CasteOBC,
		Address:       domain.Address{City: "Jaipur", State: "Rajasthan", Pincode: "302001"},
	}
}

func TestAnalyzeCategorization(t *testing.T) {
	tests := []struct {
		reason   string
		category string
		score    float64
	}{
		{"Document verification discrepancy found", CategoryDocumentDiscrepancy, 0.75},
		{"Income certificate does not match declared salary", CategoryIncomeMismatch, 0.60},
		{"Portal timeout during processing", CategoryProcessingDelay, 0.85},
		{"Applicant overaged at time of review", CategoryAgeCutoff, 0.50},
		{"Rejected without stated grounds", CategoryGeneric, 0.45},
	}
	svc := newTestService()
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			analysis := svc.Analyze(rejectedApplication(tc.reason), nil)
			assert.Equal(t, tc.category, analysis.Category)
			assert.Equal(t, tc.score, analysis.ViabilityScore)
			assert.NotEmpty(t, analysis.Precedent)
		})
	}
}

func TestAnalyzeDocumentsBonus(t *testing.T) {
	svc := newTestService()
	app := rejectedApplication("Portal timeout during processing")
	app.DocumentsSubmitted = []string{"aadhaar", "bank_statement"}

	analysis := svc.Analyze(app, nil)
	assert.Equal(t, 0.95, analysis.ViabilityScore)
	assert.Equal(t, "High", analysis.ViabilityLabel)
	assert.Equal(t, "File an appeal with supporting documents", analysis.RecommendedAction)
}

func TestAnalyzeBonusCapped(t *testing.T) {
	svc := newTestService()
	app := rejectedApplication("Portal timeout during processing")
	app.DocumentsSubmitted = []string{"aadhaar"}

	analysis := svc.Analyze(app, nil)
	assert.LessOrEqual(t, analysis.ViabilityScore, 1.0)
}

func TestAnalyzeLowViability(t *testing.T) {
	svc := newTestService()
	analysis := svc.Analyze(rejectedApplication("Rejected without stated grounds"), nil)

	assert.Equal(t, "Medium", analysis.ViabilityLabel)

	analysisNoDocs := svc.Analyze(&domain.Application{
		ID:              "APP-22222222",
		SchemeID:        "atal_pension",
		RejectionReason: "no grounds",
	}, nil)
	assert.Equal(t, 0.45, analysisNoDocs.ViabilityScore)
	assert.Equal(t, "Medium", analysisNoDocs.ViabilityLabel)
}

func TestAnalyzeMissingReason(t *testing.T) {
	svc := newTestService()
	app := rejectedApplication("")

	analysis := svc.Analyze(app, nil)
	assert.Equal(t, "No specific reason provided", analysis.RejectionReason)
	assert.Equal(t, CategoryGeneric, analysis.Category)
}

func TestAnalyzeUsesSchemeName(t *testing.T) {
	svc := newTestService()
	analysis := svc.Analyze(rejectedApplication("x"), &domain.Scheme{ID: "atal_pension", Name: "Atal Pension Yojana"})
	assert.Equal(t, "Atal Pension Yojana", analysis.SchemeName)

	analysis = svc.Analyze(rejectedApplication("x"), nil)
	assert.Equal(t, "atal_pension", analysis.SchemeName)
}

func TestGenerateEnglishLetter(t *testing.T) {
	svc := newTestService()
	app := rejectedApplication("Document verification discrepancy found")
	scheme := &domain.Scheme{ID: "atal_pension", Name: "Atal Pension Yojana", Ministry: "Ministry of Finance"}

	letter, err := svc.GenerateLetter(context.Background(), app, testCitizen(), scheme, "english")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^APL-[0-9A-F]{8}$`), letter.LetterID)
	assert.Equal(t, "english", letter.Language)
	assert.Contains(t, letter.Text, "Ramesh Kumar")
	assert.Contains(t, letter.Text, "Atal Pension Yojana")
	assert.Contains(t, letter.Text, "Ministry of Finance")
	assert.Contains(t, letter.Text, "APP-11111111")
	assert.Contains(t, letter.Text, "XXXX-XXXX-9012", "aadhaar is masked")
	assert.NotContains(t, letter.Text, "123456789012", "full aadhaar never appears")
	assert.Contains(t, letter.Text, "Unique Identification Authority of India v. CBI")
	assert.Equal(t, len(strings.Fields(letter.Text)), letter.WordCount)
	require.NotNil(t, letter.Analysis)
	assert.Equal(t, CategoryDocumentDiscrepancy, letter.Analysis.Category)
}

func TestGenerateHindiLetter(t *testing.T) {
	svc := newTestService()
	app := rejectedApplication("Income mismatch on record")

	letter, err := svc.GenerateLetter(context.Background(), app, testCitizen(), nil, "hindi")
	require.NoError(t, err)

	assert.Equal(t, "hindi", letter.Language)
	assert.Contains(t, letter.Text, "भारत सरकार")
	assert.Contains(t, letter.Text, "Ramesh Kumar")
	assert.Contains(t, letter.Text, "XXXX-XXXX-9012")
}

func TestGenerateLetterDefaultsToEnglish(t *testing.T) {
	svc := newTestService()
	letter, err := svc.GenerateLetter(context.Background(), rejectedApplication("x"), testCitizen(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "english", letter.Language)
}

func TestGenerateLetterRejectsUnknownLanguage(t *testing.T) {
	svc := newTestService()
	_, err := svc.GenerateLetter(context.Background(), rejectedApplication("x"), testCitizen(), nil, "bengali")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(err))
}

func TestGenerateLetterShortAadhaar(t *testing.T) {
	svc := newTestService()
	citizen := testCitizen()
	citizen.AadhaarNumber = ""

	letter, err := svc.GenerateLetter(context.Background(), rejectedApplication("x"), citizen, nil, "english")
	require.NoError(t, err)
	assert.Contains(t, letter.Text, "XXXX-XXXX-XXXX")
}
