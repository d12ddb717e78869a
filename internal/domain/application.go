package domain

import "time"

// ApplicationStatus tracks an application through its lifecycle.
type ApplicationStatus string

const (
	StatusDraft          ApplicationStatus = "draft"
	StatusValidating     ApplicationStatus = "validating"
	StatusReady          ApplicationStatus = "ready"
	StatusSubmitted      ApplicationStatus = "submitted"
	StatusUnderReview    ApplicationStatus = "under_review"
	StatusApproved       ApplicationStatus = "approved"
	StatusRejected       ApplicationStatus = "rejected"
	StatusAppealed       ApplicationStatus = "appealed"
	StatusAppealApproved ApplicationStatus = "appeal_approved"
	StatusAppealRejected ApplicationStatus = "appeal_rejected"
)

// AuditEntry records one submission attempt or lifecycle action.
type AuditEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	Actor        string    `json:"actor"`
	Details      string    `json:"details,omitempty"`
	PortalURL    string    `json:"portal_url,omitempty"`
	ResponseCode int       `json:"response_code,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Success      bool      `json:"success"`
}

// RiskLevel buckets a rejection probability.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelFor maps a rejection probability onto the risk ladder.
// Thresholds are inclusive at the lower bound of each band.
func RiskLevelFor(probability float64) RiskLevel {
	switch {
	case probability >= 0.7:
		return RiskCritical
	case probability >= 0.5:
		return RiskHigh
	case probability >= 0.3:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskFactor is one identified contributor to rejection risk.
type RiskFactor struct {
	Factor   string  `json:"factor"`
	Severity string  `json:"severity"` // low / medium / high / critical
	Impact   float64 `json:"impact"`   // contribution to the probability
	Detail   string  `json:"detail,omitempty"`
}

// RejectionAnalysis is the pre-submission risk report for one application.
type RejectionAnalysis struct {
	RejectionProbability float64      `json:"rejection_probability"` // 0 to 1
	RiskLevel            RiskLevel    `json:"risk_level"`
	RiskFactors          []RiskFactor `json:"risk_factors"`
	Recommendations      []string     `json:"recommendations"`
	CommonPatterns       []string     `json:"common_rejection_patterns"`
}

// Application is the full lifecycle record for one scheme application.
type Application struct {
	ID                 string            `json:"application_id"`
	CitizenID          string            `json:"citizen_id"`
	SchemeID           string            `json:"scheme_id"`
	SchemeName         string            `json:"scheme_name"`
	Status             ApplicationStatus `json:"status"`
	SubmissionDate     *time.Time        `json:"submission_date,omitempty"`
	ConfirmationNumber string            `json:"confirmation_number,omitempty"`
	PortalURL          string            `json:"portal_url,omitempty"`
	ExecutionTier      int               `json:"execution_tier"`
	DocumentsSubmitted []string          `json:"documents_submitted,omitempty"`
	RejectionAnalysis  *RejectionAnalysis `json:"rejection_analysis,omitempty"`
	RejectionReason    string            `json:"rejection_reason,omitempty"`
	RejectionDate      *time.Time        `json:"rejection_date,omitempty"`
	AppealLetter       string            `json:"appeal_letter,omitempty"`
	AppealStatus       string            `json:"appeal_status,omitempty"`
	AppealDate         *time.Time        `json:"appeal_date,omitempty"`
	ExpectedDecision   *time.Time        `json:"expected_decision_date,omitempty"`
	DisbursementInfo   string            `json:"disbursement_details,omitempty"`
	BenefitAmount      float64           `json:"benefit_amount"`
	AuditTrail         []AuditEntry      `json:"audit_trail,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// AddAudit appends an audit entry and bumps UpdatedAt.
func (a *Application) AddAudit(entry AuditEntry) {
	a.AuditTrail = append(a.AuditTrail, entry)
	a.UpdatedAt = entry.Timestamp
}

// PrefilledForm is a portal-ready application form built from a profile.
// Sensitive identifiers are masked for display.
type PrefilledForm struct {
	SchemeID      string            `json:"scheme_id"`
	SchemeName    string            `json:"scheme_name"`
	PortalURL     string            `json:"portal_url,omitempty"`
	Fields        map[string]string `json:"fields"`
	MissingFields []string          `json:"missing_fields,omitempty"`
	Documents     []string          `json:"documents"`
}
