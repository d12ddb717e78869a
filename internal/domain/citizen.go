// Package domain holds the shared types of the welfare eligibility engine:
// citizen profiles, schemes and their rules, documents, and applications.
// Services exchange these types; wire formats live in handler packages.
package domain

import "time"

// Gender of a citizen or family member.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// CasteCategory follows the reservation categories used on government portals.
type CasteCategory string

const (
	CasteGeneral CasteCategory = "general"
	CasteOBC     CasteCategory = "obc"
	CasteSC      CasteCategory = "sc"
	CasteST      CasteCategory = "st"
	CasteEWS     CasteCategory = "ews"
)

// EducationLevel is an ordered ladder from no formal education to doctorate.
// Ordering is defined by the eligibility package, not by string comparison.
type EducationLevel string

const (
	EducationNone            EducationLevel = "none"
	EducationPrimary         EducationLevel = "primary"
	EducationSecondary       EducationLevel = "secondary"
	EducationHigherSecondary EducationLevel = "higher_secondary"
	EducationGraduate        EducationLevel = "graduate"
	EducationPostGraduate    EducationLevel = "post_graduate"
	EducationDoctorate       EducationLevel = "doctorate"
)

// Occupation of a citizen.
type Occupation string

const (
	OccupationFarmer       Occupation = "farmer"
	OccupationDailyWage    Occupation = "daily_wage"
	OccupationSelfEmployed Occupation = "self_employed"
	OccupationSalaried     Occupation = "salaried"
	OccupationStudent      Occupation = "student"
	OccupationHomemaker    Occupation = "homemaker"
	OccupationUnemployed   Occupation = "unemployed"
	OccupationRetired      Occupation = "retired"
	OccupationOther        Occupation = "other"
)

// Address is a postal address within India.
type Address struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

// FamilyMember is one member of a citizen's household.
type FamilyMember struct {
	Name         string     `json:"name"`
	Relationship string     `json:"relationship"` // spouse, child, parent
	Age          int        `json:"age"`
	Gender       Gender     `json:"gender"`
	Occupation   Occupation `json:"occupation,omitempty"`
	Income       float64    `json:"income,omitempty"`
}

// CitizenProfile is the full profile used for eligibility evaluation.
// Zero values are meaningful: Age 0 and AnnualIncome 0 simply fail any
// minimum-threshold rules rather than erroring.
type CitizenProfile struct {
	CitizenID     string         `json:"citizen_id"`
	Name          string         `json:"name"`
	DateOfBirth   string         `json:"date_of_birth,omitempty"` // ISO 8601
	Age           int            `json:"age"`
	Gender        Gender         `json:"gender"`
	AadhaarNumber string         `json:"aadhaar_number,omitempty"`
	PANNumber     string         `json:"pan_number,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Email         string         `json:"email,omitempty"`
	Address       Address        `json:"address"`
	CasteCategory CasteCategory  `json:"caste_category"`
	Religion      string         `json:"religion,omitempty"`
	AnnualIncome  float64        `json:"annual_income"`
	Occupation    Occupation     `json:"occupation"`
	Education     EducationLevel `json:"education"`
	IsBPL         bool           `json:"is_bpl"`
	IsDisabled    bool           `json:"is_disabled"`
	DisabilityPct int            `json:"disability_percentage,omitempty"`
	IsMinority    bool           `json:"is_minority"`
	IsPregnant    bool           `json:"is_pregnant"`
	FamilyMembers []FamilyMember `json:"family_members,omitempty"`
	BankAccount   string         `json:"bank_account,omitempty"`
	BankIFSC      string         `json:"bank_ifsc,omitempty"`
	Documents     []string       `json:"documents,omitempty"` // held document types
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NumChildren counts family members recorded as children.
func (p *CitizenProfile) NumChildren() int {
	n := 0
	for _, m := range p.FamilyMembers {
		if m.Relationship == "child" {
			n++
		}
	}
	return n
}

// NumDaughters counts female children in the household.
func (p *CitizenProfile) NumDaughters() int {
	n := 0
	for _, m := range p.FamilyMembers {
		if m.Relationship == "child" && m.Gender == GenderFemale {
			n++
		}
	}
	return n
}

// HasSchoolAgeChildren reports whether any child is aged 6 to 18 inclusive.
func (p *CitizenProfile) HasSchoolAgeChildren() bool {
	for _, m := range p.FamilyMembers {
		if m.Relationship == "child" && m.Age >= 6 && m.Age <= 18 {
			return true
		}
	}
	return false
}

// HasDocument reports whether the profile lists the given document type.
func (p *CitizenProfile) HasDocument(docType string) bool {
	for _, d := range p.Documents {
		if d == docType {
			return true
		}
	}
	return false
}
