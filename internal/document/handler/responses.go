package handler

// RedactResponse carries text with PII masked.
type RedactResponse struct {
	RedactedText string `json:"redacted_text"`
}
