package handler

import (
	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
)

// ProcessDocumentRequest asks for a document to be extracted and validated.
type ProcessDocumentRequest struct {
	CitizenID    string              `json:"citizen_id"`
	DocumentType domain.DocumentType `json:"document_type"`
	FileName     string              `json:"file_name,omitempty"`
}

// Validate checks the process payload.
func (r *ProcessDocumentRequest) Validate() error {
	if r.CitizenID == "" {
		return dErrors.New(dErrors.CodeValidation, "citizen_id is required")
	}
	if r.DocumentType == "" {
		return dErrors.New(dErrors.CodeValidation, "document_type is required")
	}
	return nil
}

const maxRedactBytes = 64 * 1024

// RedactRequest carries free text to have PII masked.
type RedactRequest struct {
	Text string `json:"text"`
}

// Validate checks the redaction payload.
func (r *RedactRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeValidation, "text is required")
	}
	if len(r.Text) > maxRedactBytes {
		return dErrors.New(dErrors.CodeValidation, "text exceeds 64KiB")
	}
	return nil
}
