package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/domain"
)

func TestEvaluateRule(t *testing.T) {
	citizen := &domain.CitizenProfile{
		Age:           30,
		Gender:        domain.GenderFemale,
		CasteCategory: domain.CasteOBC,
		AnnualIncome:  170000,
		Occupation:    domain.OccupationSelfEmployed,
		Education:     domain.EducationGraduate,
		Address:       domain.Address{State: "Bihar"},
		IsBPL:         true,
		IsPregnant:    true,
		FamilyMembers: []domain.FamilyMember{
			{Name: "Asha", Relationship: "child", Age: 8, Gender: domain.GenderFemale},
			{Name: "Ravi", Relationship: "child", Age: 14, Gender: domain.GenderMale},
		},
	}

	tests := []struct {
		name     string
		rule     domain.EligibilityRule
		expected bool
	}{
		{"age min met", domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMin, Value: "18"}, true},
		{"age min boundary inclusive", domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMin, Value: "30"}, true},
		{"age min not met", domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMin, Value: "60"}, false},
		{"age max met", domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMax, Value: "40"}, true},
		{"age max boundary inclusive", domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMax, Value: "30"}, true},
		{"income under cap", domain.EligibilityRule{ID: "r", Kind: domain.RuleIncomeMax, Value: "180000"}, true},
		{"income at cap inclusive", domain.EligibilityRule{ID: "r", Kind: domain.RuleIncomeMax, Value: "170000"}, true},
		{"income over cap", domain.EligibilityRule{ID: "r", Kind: domain.RuleIncomeMax, Value: "150000"}, false},
		{"gender match", domain.EligibilityRule{ID: "r", Kind: domain.RuleGender, Value: "female"}, true},
		{"gender mismatch", domain.EligibilityRule{ID: "r", Kind: domain.RuleGender, Value: "male"}, false},
		{"caste in list", domain.EligibilityRule{ID: "r", Kind: domain.RuleCaste, Value: "sc,st,obc"}, true},
		{"caste list with spaces", domain.EligibilityRule{ID: "r", Kind: domain.RuleCaste, Value: "sc, obc"}, true},
		{"caste not in list", domain.EligibilityRule{ID: "r", Kind: domain.RuleCaste, Value: "sc,st"}, false},
		{"state case insensitive", domain.EligibilityRule{ID: "r", Kind: domain.RuleState, Value: "bihar"}, true},
		{"state mismatch", domain.EligibilityRule{ID: "r", Kind: domain.RuleState, Value: "Kerala"}, false},
		{"occupation in list", domain.EligibilityRule{ID: "r", Kind: domain.RuleOccupation, Value: "self_employed,farmer"}, true},
		{"education min met", domain.EligibilityRule{ID: "r", Kind: domain.RuleEducationMin, Value: "higher_secondary"}, true},
		{"education min not met", domain.EligibilityRule{ID: "r", Kind: domain.RuleEducationMin, Value: "doctorate"}, false},
		{"education max not met", domain.EligibilityRule{ID: "r", Kind: domain.RuleEducationMax, Value: "secondary"}, false},
		{"bpl flag", domain.EligibilityRule{ID: "r", Kind: domain.RuleBPL, Value: "true"}, true},
		{"disability flag unset", domain.EligibilityRule{ID: "r", Kind: domain.RuleDisability, Value: "true"}, false},
		{"pregnant flag", domain.EligibilityRule{ID: "r", Kind: domain.RulePregnant, Value: "true"}, true},
		{"has children", domain.EligibilityRule{ID: "r", Kind: domain.RuleHasChildren, Value: "true"}, true},
		{"has daughters", domain.EligibilityRule{ID: "r", Kind: domain.RuleHasDaughters, Value: "true"}, true},
		{"minority flag unset", domain.EligibilityRule{ID: "r", Kind: domain.RuleMinority, Value: "true"}, false},
		{"custom child age max met", domain.EligibilityRule{ID: "r", Kind: domain.RuleCustom, Condition: "child_age_max", Value: "10"}, true},
		{"custom child age max not met", domain.EligibilityRule{ID: "r", Kind: domain.RuleCustom, Condition: "child_age_max", Value: "5"}, false},
		{"custom sc st or female", domain.EligibilityRule{ID: "r", Kind: domain.RuleCustom, Condition: "sc_st_or_female", Value: "true"}, true},
		{"unknown custom condition", domain.EligibilityRule{ID: "r", Kind: domain.RuleCustom, Condition: "mystery", Value: "true"}, false},
		{"unknown rule kind", domain.EligibilityRule{ID: "r", Kind: "quota", Value: "true"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateRule(tt.rule, citizen)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateRuleZeroValueProfile(t *testing.T) {
	// Missing age and income behave as zero, failing minimums but passing caps.
	citizen := &domain.CitizenProfile{}

	got, err := EvaluateRule(domain.EligibilityRule{ID: "r", Kind: domain.RuleAgeMin, Value: "18"}, citizen)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = EvaluateRule(domain.EligibilityRule{ID: "r", Kind: domain.RuleIncomeMax, Value: "500000"}, citizen)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluateRuleMalformedValue(t *testing.T) {
	citizen := &domain.CitizenProfile{Age: 30}

	tests := []struct {
		name string
		rule domain.EligibilityRule
	}{
		{"non-integer age threshold", domain.EligibilityRule{ID: "bad_1", Kind: domain.RuleAgeMin, Value: "eighteen"}},
		{"non-numeric income cap", domain.EligibilityRule{ID: "bad_2", Kind: domain.RuleIncomeMax, Value: "5 lakh"}},
		{"non-integer custom child age", domain.EligibilityRule{ID: "bad_3", Kind: domain.RuleCustom, Condition: "child_age_max", Value: "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateRule(tt.rule, citizen)
			assert.False(t, got)

			var ruleErr *RuleError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tt.rule.ID, ruleErr.RuleID)
			assert.Equal(t, tt.rule.Value, ruleErr.Value)
		})
	}
}
