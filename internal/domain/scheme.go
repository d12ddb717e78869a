package domain

// SchemeCategory groups schemes by the need they address.
type SchemeCategory string

const (
	CategoryMaternity          SchemeCategory = "maternity"
	CategoryScholarship        SchemeCategory = "scholarship"
	CategoryPension            SchemeCategory = "pension"
	CategoryHealthcare         SchemeCategory = "healthcare"
	CategoryHousing            SchemeCategory = "housing"
	CategoryAgriculture        SchemeCategory = "agriculture"
	CategoryEmployment         SchemeCategory = "employment"
	CategoryInsurance          SchemeCategory = "insurance"
	CategoryGirlChild          SchemeCategory = "girl_child"
	CategoryEnergy             SchemeCategory = "energy"
	CategoryEntrepreneurship   SchemeCategory = "entrepreneurship"
	CategoryFoodSecurity       SchemeCategory = "food_security"
	CategoryDisability         SchemeCategory = "disability"
	CategoryEducation          SchemeCategory = "education"
	CategoryFinancialInclusion SchemeCategory = "financial_inclusion"
)

// RuleKind identifies which profile attribute an eligibility rule checks.
type RuleKind string

const (
	RuleAgeMin       RuleKind = "age_min"
	RuleAgeMax       RuleKind = "age_max"
	RuleIncomeMax    RuleKind = "income_max"
	RuleGender       RuleKind = "gender"
	RuleCaste        RuleKind = "caste"
	RuleState        RuleKind = "state"
	RuleOccupation   RuleKind = "occupation"
	RuleEducationMin RuleKind = "education_min"
	RuleEducationMax RuleKind = "education_max"
	RuleBPL          RuleKind = "bpl"
	RuleDisability   RuleKind = "disability"
	RulePregnant     RuleKind = "pregnant"
	RuleHasChildren  RuleKind = "has_children"
	RuleHasDaughters RuleKind = "has_daughters"
	RuleMinority     RuleKind = "minority"
	RuleCustom       RuleKind = "custom"
)

// EligibilityRule is a single eligibility condition on a scheme.
// Value is always a string; numeric kinds parse it at evaluation time.
type EligibilityRule struct {
	ID          string   `json:"rule_id"`
	Kind        RuleKind `json:"rule_type"`
	Condition   string   `json:"condition,omitempty"` // "<=", ">=", "==", "in"
	Value       string   `json:"value"`               // "60", "female", "sc,st,obc"
	Description string   `json:"description,omitempty"`
}

// Scheme is a government welfare scheme and its eligibility rules.
type Scheme struct {
	ID                 string            `json:"scheme_id"`
	Name               string            `json:"name"`
	Ministry           string            `json:"ministry"`
	Category           SchemeCategory    `json:"category"`
	Description        string            `json:"description,omitempty"`
	BenefitAmount      float64           `json:"benefit_amount"` // INR per cycle
	BenefitDescription string            `json:"benefit_description,omitempty"`
	EligibilityRules   []EligibilityRule `json:"eligibility_rules"`
	RequiredDocuments  []string          `json:"required_documents"`
	PortalURL          string            `json:"portal_url,omitempty"`
	ApplicationProcess string            `json:"application_process,omitempty"`
	State              string            `json:"state,omitempty"` // empty means all-India
	ExecutionTier      int               `json:"execution_tier"`  // 1=API, 2=portal automation, 3=offline form
	ApprovalRate       float64           `json:"approval_rate"`   // historical, 0 to 1
	ProcessingDays     int               `json:"processing_days"`
	DependsOn          []string          `json:"depends_on,omitempty"`
	ConflictsWith      []string          `json:"conflicts_with,omitempty"`
}

// SchemeMatch is the result of evaluating one scheme against a citizen.
type SchemeMatch struct {
	Scheme              *Scheme  `json:"scheme"`
	EligibilityScore    float64  `json:"eligibility_score"` // matched rules / total rules
	MatchedRules        []string `json:"matched_rules"`
	FailedRules         []string `json:"failed_rules"`
	EvaluationErrors    []string `json:"evaluation_errors,omitempty"` // malformed rule values
	MissingDocuments    []string `json:"missing_documents"`
	EstimatedBenefit    float64  `json:"estimated_benefit"`
	ApprovalProbability float64  `json:"approval_probability"`
	IsEligible          bool     `json:"is_eligible"`
	Rank                int      `json:"rank"` // 1-based position after ranking
	Conflicts           []string `json:"conflicts,omitempty"`
	Unlocks             []string `json:"unlocks,omitempty"` // schemes this one is a prerequisite for
}

// ConflictPair is one mutually exclusive scheme pair, IDs in sorted order.
type ConflictPair struct {
	SchemeA     string `json:"scheme_a"`
	SchemeB     string `json:"scheme_b"`
	SchemeAName string `json:"scheme_a_name"`
	SchemeBName string `json:"scheme_b_name"`
	Message     string `json:"message"`
}
