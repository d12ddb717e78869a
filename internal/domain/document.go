package domain

import "time"

// DocumentType enumerates the document kinds the engine understands.
type DocumentType string

const (
	DocAadhaar         DocumentType = "aadhaar"
	DocPAN             DocumentType = "pan"
	DocIncomeCert      DocumentType = "income_certificate"
	DocCasteCert       DocumentType = "caste_certificate"
	DocDomicileCert    DocumentType = "domicile_certificate"
	DocBankStatement   DocumentType = "bank_statement"
	DocEducationalCert DocumentType = "educational_certificate"
	DocBirthCert       DocumentType = "birth_certificate"
	DocDisabilityCert  DocumentType = "disability_certificate"
	DocBPLCard         DocumentType = "bpl_card"
	DocRationCard      DocumentType = "ration_card"
	DocVoterID         DocumentType = "voter_id"
	DocPassportPhoto   DocumentType = "passport_photo"
)

// AuthenticityStatus is the outcome of document validation.
type AuthenticityStatus string

const (
	AuthPending      AuthenticityStatus = "pending"
	AuthVerified     AuthenticityStatus = "verified"
	AuthFailed       AuthenticityStatus = "failed"
	AuthManualReview AuthenticityStatus = "manual_review"
)

// ExtractionResult holds the structured fields pulled out of a document.
type ExtractionResult struct {
	DocumentType    DocumentType      `json:"document_type"`
	ExtractedFields map[string]string `json:"extracted_fields"`
	Confidence      float64           `json:"confidence"` // 0 to 1
	RawText         string            `json:"raw_text,omitempty"`
}

// ValidationIssue is one problem found during document validation.
type ValidationIssue struct {
	Field      string `json:"field,omitempty"`
	Issue      string `json:"issue"`
	Severity   string `json:"severity"` // warning / error
	Suggestion string `json:"suggestion,omitempty"`
}

// Document is a citizen document with its extraction and validation results.
type Document struct {
	ID                 string             `json:"document_id"`
	CitizenID          string             `json:"citizen_id"`
	DocumentType       DocumentType       `json:"document_type"`
	FileName           string             `json:"file_name,omitempty"`
	FileSize           int64              `json:"file_size,omitempty"`
	ExtractionResult   *ExtractionResult  `json:"extraction_result,omitempty"`
	ExtractedAt        *time.Time         `json:"extracted_at,omitempty"`
	AuthenticityStatus AuthenticityStatus `json:"authenticity_status"`
	ValidationIssues   []ValidationIssue  `json:"validation_issues,omitempty"`
	ValidatedAt        *time.Time         `json:"validated_at,omitempty"`
	IssuingAuthority   string             `json:"issuing_authority,omitempty"`
	IssueDate          *time.Time         `json:"issue_date,omitempty"`
	ExpiryDate         *time.Time         `json:"expiry_date,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// IsValid reports whether the document passed validation with no errors.
func (d *Document) IsValid() bool {
	return d.AuthenticityStatus == AuthVerified && !d.HasErrors()
}

// HasErrors reports whether any validation issue has error severity.
func (d *Document) HasErrors() bool {
	for _, issue := range d.ValidationIssues {
		if issue.Severity == "error" {
			return true
		}
	}
	return false
}

// RequiredFields lists the fields an extraction must produce per document
// type for the extraction to be considered complete. Types absent from the
// map have no field requirements.
var RequiredFields = map[DocumentType][]string{
	DocAadhaar:         {"aadhaar_number", "name", "date_of_birth", "address", "gender"},
	DocPAN:             {"pan_number", "name", "date_of_birth", "father_name"},
	DocIncomeCert:      {"certificate_number", "name", "annual_income", "issuing_authority", "validity_period"},
	DocCasteCert:       {"certificate_number", "name", "caste_category", "issuing_authority"},
	DocDomicileCert:    {"certificate_number", "name", "state", "district", "issuing_authority"},
	DocBankStatement:   {"account_number", "account_holder", "bank_name", "ifsc_code", "balance"},
	DocEducationalCert: {"certificate_type", "institution", "name", "year_of_passing", "percentage_or_grade"},
}
