package risk

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"jansetu/internal/domain"
)

func TestFeatureScoreDeterministicWithZeroNoise(t *testing.T) {
	citizen := completeCitizen()
	scheme := testScheme()

	first := FeatureScore(citizen, scheme, ZeroNoise)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FeatureScore(citizen, scheme, ZeroNoise))
	}
}

func TestFeatureScoreCompleteProfileScoresLowerThanEmpty(t *testing.T) {
	scheme := testScheme()

	complete := FeatureScore(completeCitizen(), scheme, ZeroNoise)
	empty := FeatureScore(&domain.CitizenProfile{}, scheme, ZeroNoise)

	assert.Less(t, complete, empty)
}

func TestFeatureScoreBounds(t *testing.T) {
	scheme := testScheme()
	rng := rand.New(rand.NewSource(42))
	noise := UniformNoise(rng)

	profiles := []*domain.CitizenProfile{
		completeCitizen(),
		{},
		{Age: 40, AnnualIncome: 180000},
		{Age: 18, AadhaarNumber: "234512345678", FamilyMembers: make([]domain.FamilyMember, 10)},
	}

	for _, p := range profiles {
		for i := 0; i < 100; i++ {
			score := FeatureScore(p, scheme, noise)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestFeatureVector(t *testing.T) {
	citizen := completeCitizen()
	citizen.Age = 39 // one year from the max cutoff
	citizen.AnnualIncome = 90000
	citizen.FamilyMembers = []domain.FamilyMember{
		{Name: "A", Relationship: "spouse", Age: 35, Gender: domain.GenderFemale},
		{Name: "B", Relationship: "child", Age: 10, Gender: domain.GenderMale},
	}

	features := featureVector(citizen, testScheme())

	assert.Equal(t, 1.0, features[0])                 // all documents held
	assert.Equal(t, 1.0, features[1])                 // aadhaar present
	assert.Equal(t, 1.0, features[2])                 // bank present
	assert.InDelta(t, 0.5, features[3], 0.001)        // income ratio 90000/180000
	assert.InDelta(t, 0.7, features[4], 0.001)        // age one off the cutoff
	assert.Equal(t, 0.88, features[5])                // approval rate
	assert.InDelta(t, 0.2, features[6], 0.001)        // two family members
}

func TestUniformNoiseStaysInRange(t *testing.T) {
	noise := UniformNoise(rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		n := noise()
		assert.GreaterOrEqual(t, n, -0.03)
		assert.Less(t, n, 0.03)
	}
}
