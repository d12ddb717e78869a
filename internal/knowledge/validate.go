package knowledge

import (
	"fmt"
	"strconv"
	"strings"

	"jansetu/internal/domain"
)

// ValidateCatalog checks catalog integrity before the graph is built:
// unique scheme IDs, rules and approval rates in range, and relationship
// targets that exist. Run at startup so a bad catalog fails fast.
func ValidateCatalog(schemes []*domain.Scheme) error {
	ids := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		if s.ID == "" {
			return fmt.Errorf("scheme %q has empty ID", s.Name)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate scheme ID %q", s.ID)
		}
		ids[s.ID] = true

		if s.ApprovalRate < 0 || s.ApprovalRate > 1 {
			return fmt.Errorf("scheme %q: approval rate %v out of range", s.ID, s.ApprovalRate)
		}
		if s.ExecutionTier < 1 || s.ExecutionTier > 3 {
			return fmt.Errorf("scheme %q: execution tier %d out of range", s.ID, s.ExecutionTier)
		}

		ruleIDs := make(map[string]bool, len(s.EligibilityRules))
		for _, r := range s.EligibilityRules {
			if r.ID == "" {
				return fmt.Errorf("scheme %q has a rule with empty ID", s.ID)
			}
			if ruleIDs[r.ID] {
				return fmt.Errorf("scheme %q: duplicate rule ID %q", s.ID, r.ID)
			}
			ruleIDs[r.ID] = true

			if err := validateRuleValue(r); err != nil {
				return fmt.Errorf("scheme %q: %w", s.ID, err)
			}
		}
	}

	for _, s := range schemes {
		for _, dep := range s.DependsOn {
			if !ids[dep] {
				return fmt.Errorf("scheme %q depends on unknown scheme %q", s.ID, dep)
			}
		}
		for _, c := range s.ConflictsWith {
			if !ids[c] {
				return fmt.Errorf("scheme %q conflicts with unknown scheme %q", s.ID, c)
			}
		}
	}

	return nil
}

// validateRuleValue ensures numeric rule kinds carry parseable thresholds.
// A bad value would otherwise only surface as a per-evaluation error.
func validateRuleValue(r domain.EligibilityRule) error {
	switch r.Kind {
	case domain.RuleAgeMin, domain.RuleAgeMax:
		if _, err := strconv.Atoi(strings.TrimSpace(r.Value)); err != nil {
			return fmt.Errorf("rule %q: non-integer value %q", r.ID, r.Value)
		}
	case domain.RuleIncomeMax:
		if _, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64); err != nil {
			return fmt.Errorf("rule %q: non-numeric value %q", r.ID, r.Value)
		}
	case domain.RuleCustom:
		if r.Condition == "child_age_max" {
			if _, err := strconv.Atoi(strings.TrimSpace(r.Value)); err != nil {
				return fmt.Errorf("rule %q: non-integer value %q", r.ID, r.Value)
			}
		}
	}
	return nil
}
