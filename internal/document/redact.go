package document

import "regexp"

// Redaction patterns are applied in order. Aadhaar and PAN masks run before
// the generic account mask so their specific shapes win.
var (
	aadhaarPattern = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)
	panPattern     = regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`)
	phonePattern   = regexp.MustCompile(`\b\d{10}\b`)
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	accountPattern = regexp.MustCompile(`\b\d{8,18}\b`)
)

// RedactPII masks Aadhaar numbers, PAN numbers, phone numbers, email
// addresses and bank account numbers in free text.
func RedactPII(text string) string {
	text = aadhaarPattern.ReplaceAllString(text, "XXXX-XXXX-XXXX")
	text = panPattern.ReplaceAllString(text, "XXXXX0000X")
	text = phonePattern.ReplaceAllString(text, "XXXXXXXXXX")
	text = emailPattern.ReplaceAllString(text, "***@***.***")
	text = accountPattern.ReplaceAllString(text, "XXXXXXXX")
	return text
}
