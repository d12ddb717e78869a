// Package risk predicts rejection risk for scheme applications before they
// are submitted, combining a rule-based scorer over known rejection patterns
// with a feature-weighted model.
package risk

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"jansetu/internal/domain"
	platformstrings "jansetu/pkg/platform/strings"
)

// RejectionPattern is a known government rejection cause with its observed
// weight, sourced from RTI responses on scheme rejection statistics.
type RejectionPattern struct {
	ID          string
	Name        string
	Weight      float64
	Description string
}

// RejectionPatterns is ordered by weight, most common first.
var RejectionPatterns = []RejectionPattern{
	{ID: "incomplete_docs", Name: "Incomplete Documentation", Weight: 0.30, Description: "Missing or expired mandatory documents"},
	{ID: "income_mismatch", Name: "Income Certificate Mismatch", Weight: 0.20, Description: "Declared income differs from income certificate"},
	{ID: "aadhaar_bank_mismatch", Name: "Aadhaar-Bank Name Mismatch", Weight: 0.15, Description: "Name on Aadhaar doesn't match bank account name"},
	{ID: "address_mismatch", Name: "Address / Domicile Mismatch", Weight: 0.10, Description: "Address on documents doesn't match domicile certificate"},
	{ID: "age_boundary", Name: "Age Boundary Issue", Weight: 0.10, Description: "Applicant's age is at the boundary of eligibility cutoff"},
	{ID: "duplicate_application", Name: "Duplicate Application Detected", Weight: 0.10, Description: "Existing active application for the same scheme"},
	{ID: "caste_cert_expired", Name: "Caste Certificate Validity", Weight: 0.05, Description: "Caste certificate older than 6 months"},
}

// RuleBasedScore runs the rejection pattern checks against a citizen and
// scheme. The returned probability is clamped to [0, 1]; factors explain
// every contribution.
func RuleBasedScore(citizen *domain.CitizenProfile, scheme *domain.Scheme) *domain.RejectionAnalysis {
	var factors []domain.RiskFactor
	total := 0.0

	// Incomplete documentation, scaled by how much is missing.
	missing := missingDocuments(citizen, scheme)
	if len(missing) > 0 {
		required := len(scheme.RequiredDocuments)
		if required < 1 {
			required = 1
		}
		contribution := 0.30 * float64(len(missing)) / float64(required)
		severity := "medium"
		if len(missing) > 2 {
			severity = "high"
		}
		factors = append(factors, domain.RiskFactor{
			Factor:   "Incomplete Documentation",
			Severity: severity,
			Impact:   round2(contribution),
			Detail:   "Missing documents: " + strings.Join(missing, ", "),
		})
		total += contribution
	}

	// Declared income close to the scheme's cap invites verification scrutiny.
	if citizen.AnnualIncome > 0 {
		for _, rule := range scheme.EligibilityRules {
			if rule.Kind != domain.RuleIncomeMax {
				continue
			}
			maxIncome, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64)
			if err != nil || maxIncome <= 0 {
				continue
			}
			ratio := citizen.AnnualIncome / maxIncome
			if ratio > 0.85 {
				contribution := 0.20 * math.Min(ratio-0.85, 0.15) / 0.15
				severity := "medium"
				if ratio > 0.95 {
					severity = "high"
				}
				factors = append(factors, domain.RiskFactor{
					Factor:   "Income Near Threshold",
					Severity: severity,
					Impact:   round2(contribution),
					Detail:   fmt.Sprintf("Income ₹%.0f is %.0f%% of max ₹%.0f", citizen.AnnualIncome, ratio*100, maxIncome),
				})
				total += contribution
			}
		}
	}

	// Aadhaar is mandatory for direct benefit transfer.
	if citizen.AadhaarNumber == "" {
		factors = append(factors, domain.RiskFactor{
			Factor:   "Missing Aadhaar",
			Severity: "critical",
			Impact:   0.25,
			Detail:   "Aadhaar number not provided, required for DBT",
		})
		total += 0.25
	}

	// Disbursement needs a linked bank account.
	if citizen.BankAccount == "" {
		factors = append(factors, domain.RiskFactor{
			Factor:   "No Bank Account Linked",
			Severity: "high",
			Impact:   0.15,
			Detail:   "Bank account needed for benefit disbursement via DBT",
		})
		total += 0.15
	}

	// Age within one year of a cutoff risks rejection on reverification.
	if citizen.Age > 0 {
		for _, rule := range scheme.EligibilityRules {
			if rule.Kind != domain.RuleAgeMin && rule.Kind != domain.RuleAgeMax {
				continue
			}
			limit, err := strconv.Atoi(strings.TrimSpace(rule.Value))
			if err != nil {
				continue
			}
			diff := citizen.Age - limit
			if diff < 0 {
				diff = -diff
			}
			if diff <= 1 {
				factors = append(factors, domain.RiskFactor{
					Factor:   "Age Boundary Risk",
					Severity: "medium",
					Impact:   0.08,
					Detail:   fmt.Sprintf("Age %d is at the boundary of limit %d", citizen.Age, limit),
				})
				total += 0.08
			}
		}
	}

	// Baseline from the scheme's historical rejection rate.
	total += (1 - scheme.ApprovalRate) * 0.3

	total = clamp01(total)

	patterns := make([]string, 0, 3)
	for _, p := range RejectionPatterns[:3] {
		patterns = append(patterns, p.Name)
	}

	return &domain.RejectionAnalysis{
		RejectionProbability: round2(total),
		RiskLevel:            domain.RiskLevelFor(total),
		RiskFactors:          factors,
		Recommendations:      recommendations(factors, missing),
		CommonPatterns:       patterns,
	}
}

// recommendations derives actionable fixes from the identified factors,
// one category each, deduped while preserving order.
func recommendations(factors []domain.RiskFactor, missingDocs []string) []string {
	var recs []string
	for _, f := range factors {
		switch {
		case strings.Contains(f.Factor, "Documentation"):
			for _, doc := range missingDocs {
				recs = append(recs, "Upload your "+strings.ReplaceAll(doc, "_", " ")+" before submitting")
			}
		case strings.Contains(f.Factor, "Aadhaar"):
			recs = append(recs, "Link your Aadhaar number, this is mandatory for Direct Benefit Transfer")
		case strings.Contains(f.Factor, "Bank"):
			recs = append(recs, "Open a Jan Dhan account if you don't have one, it's zero-balance and free")
		case strings.Contains(f.Factor, "Income"):
			recs = append(recs, "Ensure income certificate matches your actual declared income to avoid mismatch")
		case strings.Contains(f.Factor, "Age"):
			recs = append(recs, "Submit application before your birthdate crosses the age cutoff")
		}
	}
	return platformstrings.Dedupe(recs)
}

func missingDocuments(citizen *domain.CitizenProfile, scheme *domain.Scheme) []string {
	var missing []string
	for _, doc := range scheme.RequiredDocuments {
		if !citizen.HasDocument(doc) {
			missing = append(missing, doc)
		}
	}
	return missing
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
