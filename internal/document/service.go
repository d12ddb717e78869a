package document

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"jansetu/internal/domain"
	"jansetu/pkg/requestcontext"
)

// fieldTemplate is one extracted field with optional random digit padding.
// randDigits 0 means the value is literal.
type fieldTemplate struct {
	value      string
	randDigits int
}

// extractionTemplates drive the simulated OCR pass per document type. The
// identifiers get fresh random digits per extraction so repeated scans do
// not collide.
var extractionTemplates = map[domain.DocumentType]map[string]fieldTemplate{
	domain.DocAadhaar: {
		"aadhaar_number": {value: "XXXX-XXXX-", randDigits: 4},
		"name":           {value: "Demo Citizen"},
		"date_of_birth":  {value: "1990-01-15"},
		"address":        {value: "New Delhi, Delhi 110001"},
		"gender":         {value: "male"},
	},
	domain.DocPAN: {
		"pan_number":    {value: "ABCDE", randDigits: 4},
		"name":          {value: "Demo Citizen"},
		"date_of_birth": {value: "1990-01-15"},
		"father_name":   {value: "Demo Father"},
	},
	domain.DocIncomeCert: {
		"certificate_number": {value: "INC-", randDigits: 6},
		"name":               {value: "Demo Citizen"},
		"annual_income":      {value: "200000"},
		"issuing_authority":  {value: "Tehsildar, District Revenue Office"},
		"validity_period":    {value: "6 months"},
	},
	domain.DocCasteCert: {
		"certificate_number": {value: "CST-", randDigits: 6},
		"name":               {value: "Demo Citizen"},
		"caste_category":     {value: "obc"},
		"issuing_authority":  {value: "District Magistrate Office"},
	},
	domain.DocDomicileCert: {
		"certificate_number": {value: "DOM-", randDigits: 6},
		"name":               {value: "Demo Citizen"},
		"state":              {value: "Delhi"},
		"district":           {value: "New Delhi"},
		"issuing_authority":  {value: "SDM Office"},
	},
	domain.DocBankStatement: {
		"account_number": {value: "ACC", randDigits: 8},
		"account_holder": {value: "Demo Citizen"},
		"bank_name":      {value: "State Bank of India"},
		"ifsc_code":      {value: "SBIN0001234"},
		"balance":        {value: "50000"},
	},
	domain.DocEducationalCert: {
		"certificate_type":    {value: "Post-Matric"},
		"institution":         {value: "Delhi University"},
		"name":                {value: "Demo Citizen"},
		"year_of_passing":     {value: "2023"},
		"percentage_or_grade": {value: "78%"},
	},
}

// aadhaarFormat matches a 12-digit Aadhaar, optionally grouped by spaces or
// dashes. Masked leading groups count as digits for format purposes.
var aadhaarFormat = regexp.MustCompile(`\d{4}[-\s]?\d{4}[-\s]?\d{4}`)

const confidenceThreshold = 0.8

// Randomizer supplies the simulated OCR variance. Injectable so tests pin
// extraction output.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}

// Service performs document extraction, validation and PII redaction.
type Service struct {
	rng    Randomizer
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService constructs a document service. A seeded *rand.Rand satisfies
// the Randomizer.
func NewService(rng Randomizer, logger *slog.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Service{
		rng:    rng,
		logger: logger,
		tracer: otel.Tracer("jansetu/document"),
	}
}

// Extract runs the simulated OCR pass for a document type and returns a
// document with its extraction attached. Unknown document types extract
// no fields but still produce a document.
func (s *Service) Extract(ctx context.Context, citizenID string, docType domain.DocumentType, fileName string) *domain.Document {
	now := requestcontext.Now(ctx)

	fields := make(map[string]string)
	for name, tmpl := range extractionTemplates[docType] {
		fields[name] = s.fill(tmpl)
	}

	confidence := round2(0.85 + s.rng.Float64()*0.14)

	if fileName == "" {
		fileName = string(docType) + "_scan.pdf"
	}

	doc := &domain.Document{
		ID:           newDocumentID(),
		CitizenID:    citizenID,
		DocumentType: docType,
		FileName:     fileName,
		ExtractionResult: &domain.ExtractionResult{
			DocumentType:    docType,
			ExtractedFields: fields,
			Confidence:      confidence,
			RawText:         fmt.Sprintf("Simulated OCR text for %s document", docType),
		},
		ExtractedAt:        &now,
		AuthenticityStatus: domain.AuthPending,
		CreatedAt:          now,
	}
	return doc
}

// Validate checks an extracted document for completeness and format and
// sets its authenticity status. Field errors fail the document, warnings
// alone route it to manual review.
func (s *Service) Validate(ctx context.Context, doc *domain.Document) *domain.Document {
	now := requestcontext.Now(ctx)

	if doc.ExtractionResult == nil {
		doc.AuthenticityStatus = domain.AuthFailed
		doc.ValidationIssues = []domain.ValidationIssue{{
			Field:      "extraction",
			Issue:      "No extraction result available",
			Severity:   "error",
			Suggestion: "Re-upload the document with better quality",
		}}
		doc.ValidatedAt = &now
		return doc
	}

	var issues []domain.ValidationIssue
	fields := doc.ExtractionResult.ExtractedFields

	for _, required := range domain.RequiredFields[doc.DocumentType] {
		if fields[required] == "" {
			issues = append(issues, domain.ValidationIssue{
				Field:      required,
				Issue:      fmt.Sprintf("Required field %q missing or empty", required),
				Severity:   "error",
				Suggestion: fmt.Sprintf("Ensure %s is clearly visible in the document scan", strings.ReplaceAll(required, "_", " ")),
			})
		}
	}

	if doc.ExtractionResult.Confidence < confidenceThreshold {
		issues = append(issues, domain.ValidationIssue{
			Field:      "confidence",
			Issue:      fmt.Sprintf("Low extraction confidence: %.0f%%", doc.ExtractionResult.Confidence*100),
			Severity:   "warning",
			Suggestion: "Re-upload a clearer scan (300 DPI recommended)",
		})
	}

	if doc.DocumentType == domain.DocAadhaar {
		if aadhaar := fields["aadhaar_number"]; aadhaar != "" {
			normalized := strings.ReplaceAll(aadhaar, "X", "0")
			if !aadhaarFormat.MatchString(normalized) {
				issues = append(issues, domain.ValidationIssue{
					Field:      "aadhaar_number",
					Issue:      "Aadhaar number format invalid",
					Severity:   "warning",
					Suggestion: "Aadhaar should be a 12-digit number",
				})
			}
		}
	}

	hasErrors := false
	for _, issue := range issues {
		if issue.Severity == "error" {
			hasErrors = true
			break
		}
	}
	switch {
	case hasErrors:
		doc.AuthenticityStatus = domain.AuthFailed
	case len(issues) > 0:
		doc.AuthenticityStatus = domain.AuthManualReview
	default:
		doc.AuthenticityStatus = domain.AuthVerified
	}

	doc.ValidationIssues = issues
	doc.ValidatedAt = &now
	return doc
}

// Process runs the full extract-then-validate pipeline.
func (s *Service) Process(ctx context.Context, citizenID string, docType domain.DocumentType, fileName string) *domain.Document {
	ctx, span := s.tracer.Start(ctx, "document.Process")
	defer span.End()

	doc := s.Validate(ctx, s.Extract(ctx, citizenID, docType, fileName))

	span.SetAttributes(
		attribute.String("document.type", string(docType)),
		attribute.String("document.status", string(doc.AuthenticityStatus)),
	)
	s.logger.InfoContext(ctx, "document processed",
		"document_id", doc.ID,
		"document_type", docType,
		"status", doc.AuthenticityStatus,
		"issues", len(doc.ValidationIssues),
	)
	return doc
}

func (s *Service) fill(tmpl fieldTemplate) string {
	if tmpl.randDigits == 0 {
		return tmpl.value
	}
	low := pow10(tmpl.randDigits - 1)
	return tmpl.value + fmt.Sprintf("%d", low+s.rng.Intn(low*9))
}

func newDocumentID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "DOC-" + strings.ToUpper(raw[:8])
}

func pow10(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
