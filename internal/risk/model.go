package risk

import (
	"math/rand"
	"strconv"
	"strings"

	"jansetu/internal/domain"
)

// NoiseSource supplies the model's variance term. Injectable so tests can
// pin it to zero.
type NoiseSource func() float64

// UniformNoise returns a source drawing from [-0.03, 0.03), matching the
// variance of the historical model this scorer stands in for.
func UniformNoise(rng *rand.Rand) NoiseSource {
	return func() float64 {
		return rng.Float64()*0.06 - 0.03
	}
}

// ZeroNoise is a deterministic source for tests and batch comparisons.
func ZeroNoise() float64 { return 0 }

// featureWeights order matches featureVector.
var featureWeights = []float64{0.30, 0.15, 0.10, 0.15, 0.10, 0.15, 0.05}

// featureVector encodes a citizen and scheme into the seven model features:
// document completeness, Aadhaar presence, bank presence, income ratio,
// age boundary proximity, scheme approval rate, and family size.
func featureVector(citizen *domain.CitizenProfile, scheme *domain.Scheme) []float64 {
	missing := len(missingDocuments(citizen, scheme))
	docCompleteness := 1.0
	if total := len(scheme.RequiredDocuments); total > 0 {
		docCompleteness = 1.0 - float64(missing)/float64(total)
	}

	hasAadhaar := 0.0
	if citizen.AadhaarNumber != "" {
		hasAadhaar = 1.0
	}
	hasBank := 0.0
	if citizen.BankAccount != "" {
		hasBank = 1.0
	}

	incomeRatio := 0.0
	for _, rule := range scheme.EligibilityRules {
		if rule.Kind != domain.RuleIncomeMax {
			continue
		}
		if maxVal, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64); err == nil && maxVal > 0 {
			incomeRatio = citizen.AnnualIncome / maxVal
		}
		break
	}

	ageRisk := 0.0
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
			if diff <= 2 {
				ageRisk = 1.0 - float64(diff)*0.3
			}
		}
	}

	return []float64{
		docCompleteness,
		hasAadhaar,
		hasBank,
		incomeRatio,
		ageRisk,
		scheme.ApprovalRate,
		float64(len(citizen.FamilyMembers)) / 10.0,
	}
}

// FeatureScore predicts rejection probability from the weighted feature
// vector plus the noise term, clamped to [0, 1] and rounded to 3 decimals.
func FeatureScore(citizen *domain.CitizenProfile, scheme *domain.Scheme, noise NoiseSource) float64 {
	features := featureVector(citizen, scheme)

	positive := 0.0
	for i, f := range features {
		positive += f * featureWeights[i]
	}

	return round3(clamp01(1.0 - positive + noise()))
}
