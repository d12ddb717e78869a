// Package eligibility evaluates scheme rules against citizen profiles and
// ranks the schemes a citizen can apply for.
package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"jansetu/internal/domain"
)

// eduRank orders education levels from no formal education (0) upwards.
// Unknown levels rank 0 so the comparison degrades instead of erroring.
var eduRank = map[domain.EducationLevel]int{
	domain.EducationNone:            0,
	domain.EducationPrimary:         1,
	domain.EducationSecondary:       2,
	domain.EducationHigherSecondary: 3,
	domain.EducationGraduate:        4,
	domain.EducationPostGraduate:    5,
	domain.EducationDoctorate:       6,
}

// RuleError reports a rule whose stored value could not be interpreted,
// such as a non-numeric threshold on an age rule. The rule neither matches
// nor fails; callers surface it separately.
type RuleError struct {
	RuleID string
	Kind   domain.RuleKind
	Value  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s (%s): %s value %q", e.RuleID, e.Kind, e.Reason, e.Value)
}

// EvaluateRule checks a single rule against a profile. Unknown rule kinds
// and unknown custom conditions evaluate to false without error; malformed
// numeric values return a *RuleError.
func EvaluateRule(rule domain.EligibilityRule, citizen *domain.CitizenProfile) (bool, error) {
	switch rule.Kind {
	case domain.RuleAgeMin:
		threshold, err := ruleInt(rule)
		if err != nil {
			return false, err
		}
		return citizen.Age >= threshold, nil

	case domain.RuleAgeMax:
		threshold, err := ruleInt(rule)
		if err != nil {
			return false, err
		}
		return citizen.Age <= threshold, nil

	case domain.RuleIncomeMax:
		threshold, err := ruleFloat(rule)
		if err != nil {
			return false, err
		}
		return citizen.AnnualIncome <= threshold, nil

	case domain.RuleGender:
		return string(citizen.Gender) == rule.Value, nil

	case domain.RuleCaste:
		return inList(string(citizen.CasteCategory), rule.Value), nil

	case domain.RuleState:
		return strings.EqualFold(citizen.Address.State, rule.Value), nil

	case domain.RuleOccupation:
		return inList(string(citizen.Occupation), rule.Value), nil

	case domain.RuleEducationMin:
		return eduRank[citizen.Education] >= eduRank[domain.EducationLevel(rule.Value)], nil

	case domain.RuleEducationMax:
		return eduRank[citizen.Education] <= eduRank[domain.EducationLevel(rule.Value)], nil

	case domain.RuleBPL:
		return citizen.IsBPL, nil

	case domain.RuleDisability:
		return citizen.IsDisabled, nil

	case domain.RulePregnant:
		return citizen.IsPregnant, nil

	case domain.RuleHasChildren:
		return citizen.NumChildren() > 0, nil

	case domain.RuleHasDaughters:
		return citizen.NumDaughters() > 0, nil

	case domain.RuleMinority:
		return citizen.IsMinority, nil

	case domain.RuleCustom:
		return evaluateCustom(rule, citizen)
	}

	return false, nil
}

func evaluateCustom(rule domain.EligibilityRule, citizen *domain.CitizenProfile) (bool, error) {
	switch rule.Condition {
	case "child_age_max":
		maxAge, err := ruleInt(rule)
		if err != nil {
			return false, err
		}
		for _, m := range citizen.FamilyMembers {
			if m.Relationship == "child" && m.Age <= maxAge {
				return true, nil
			}
		}
		return false, nil

	case "sc_st_or_female":
		return citizen.CasteCategory == domain.CasteSC ||
			citizen.CasteCategory == domain.CasteST ||
			citizen.Gender == domain.GenderFemale, nil
	}

	return false, nil
}

func ruleInt(rule domain.EligibilityRule) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(rule.Value))
	if err != nil {
		return 0, &RuleError{RuleID: rule.ID, Kind: rule.Kind, Value: rule.Value, Reason: "non-integer"}
	}
	return n, nil
}

func ruleFloat(rule domain.EligibilityRule) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64)
	if err != nil {
		return 0, &RuleError{RuleID: rule.ID, Kind: rule.Kind, Value: rule.Value, Reason: "non-numeric"}
	}
	return f, nil
}

func inList(value, csv string) bool {
	for _, item := range strings.Split(csv, ",") {
		if strings.TrimSpace(item) == value {
			return true
		}
	}
	return false
}
