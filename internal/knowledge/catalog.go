// Package knowledge holds the scheme catalog and the knowledge graph built
// from it: scheme, rule, and document nodes linked by requirement,
// dependency, and conflict edges, with multi-hop traversal helpers.
package knowledge

import "jansetu/internal/domain"

// Catalog returns the built-in set of central government welfare schemes.
// Each call returns a fresh slice; callers may not mutate shared state.
func Catalog() []*domain.Scheme {
	return []*domain.Scheme{
		{
			ID:                 "pm_kisan",
			Name:               "PM-KISAN Samman Nidhi",
			Ministry:           "Ministry of Agriculture & Farmers Welfare",
			Category:           domain.CategoryAgriculture,
			Description:        "Direct income support of ₹6,000/year to small and marginal farmers in three equal installments.",
			BenefitAmount:      6000,
			BenefitDescription: "₹6,000 per year in 3 installments of ₹2,000",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "pmk_1", Kind: domain.RuleOccupation, Condition: "==", Value: "farmer", Description: "Must be a farmer"},
				{ID: "pmk_2", Kind: domain.RuleIncomeMax, Condition: "<=", Value: "500000", Description: "Annual income ≤ ₹5 lakh"},
			},
			RequiredDocuments:  []string{"aadhaar", "bank_statement", "income_certificate"},
			PortalURL:          "https://pmkisan.gov.in",
			ApplicationProcess: "Online via PM-KISAN portal or through CSC centres",
			ExecutionTier:      1,
			ApprovalRate:       0.85,
			ProcessingDays:     21,
		},
		{
			ID:                 "pm_ujjwala",
			Name:               "Pradhan Mantri Ujjwala Yojana",
			Ministry:           "Ministry of Petroleum & Natural Gas",
			Category:           domain.CategoryEnergy,
			Description:        "Free LPG connections to women from BPL households.",
			BenefitAmount:      1600,
			BenefitDescription: "Free LPG connection + first refill and stove",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "uj_1", Kind: domain.RuleGender, Condition: "==", Value: "female", Description: "Applicant must be female"},
				{ID: "uj_2", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "Must belong to BPL household"},
				{ID: "uj_3", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18", Description: "Age ≥ 18"},
			},
			RequiredDocuments: []string{"aadhaar", "bpl_card", "bank_statement"},
			PortalURL:         "https://www.pmujjwalayojana.com",
			ExecutionTier:     2,
			ApprovalRate:      0.80,
			ProcessingDays:    30,
		},
		{
			ID:                 "pmay",
			Name:               "Pradhan Mantri Awas Yojana (Gramin)",
			Ministry:           "Ministry of Housing & Urban Affairs",
			Category:           domain.CategoryHousing,
			Description:        "Financial assistance for constructing pucca house for BPL families.",
			BenefitAmount:      120000,
			BenefitDescription: "₹1,20,000 in plains / ₹1,30,000 in hilly areas",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "pmay_1", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "BPL household"},
				{ID: "pmay_2", Kind: domain.RuleIncomeMax, Condition: "<=", Value: "300000", Description: "Annual income ≤ ₹3 lakh"},
			},
			RequiredDocuments: []string{"aadhaar", "income_certificate", "bpl_card", "bank_statement"},
			PortalURL:         "https://pmaymis.gov.in",
			ExecutionTier:     2,
			ApprovalRate:      0.65,
			ProcessingDays:    90,
			DependsOn:         []string{"pm_jan_dhan"},
		},
		{
			ID:                 "pm_jan_dhan",
			Name:               "Pradhan Mantri Jan Dhan Yojana",
			Ministry:           "Ministry of Finance",
			Category:           domain.CategoryFinancialInclusion,
			Description:        "Zero-balance bank account with RuPay debit card, insurance, and overdraft facility.",
			BenefitAmount:      10000,
			BenefitDescription: "Overdraft up to ₹10,000 + ₹2 lakh accident insurance",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "jdy_1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "10", Description: "Age ≥ 10"},
			},
			RequiredDocuments: []string{"aadhaar"},
			PortalURL:         "https://pmjdy.gov.in",
			ExecutionTier:     1,
			ApprovalRate:      0.95,
			ProcessingDays:    7,
		},
		{
			ID:                 "sukanya_samriddhi",
			Name:               "Sukanya Samriddhi Yojana",
			Ministry:           "Ministry of Finance",
			Category:           domain.CategoryGirlChild,
			Description:        "High-interest savings scheme for girl child education and marriage.",
			BenefitAmount:      250000,
			BenefitDescription: "Tax-free returns at 8.2% p.a. (maturity at 21 years)",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "ssy_1", Kind: domain.RuleHasDaughters, Condition: "==", Value: "true", Description: "Must have at least one daughter"},
				{ID: "ssy_2", Kind: domain.RuleCustom, Condition: "child_age_max", Value: "10", Description: "Daughter's age ≤ 10"},
			},
			RequiredDocuments: []string{"aadhaar", "birth_certificate", "bank_statement"},
			PortalURL:         "https://www.india.gov.in/sukanya-samriddhi-yojana",
			ExecutionTier:     2,
			ApprovalRate:      0.90,
			ProcessingDays:    14,
			ConflictsWith:     []string{"beti_bachao"},
		},
		{
			ID:                 "beti_bachao",
			Name:               "Beti Bachao Beti Padhao",
			Ministry:           "Ministry of Women & Child Development",
			Category:           domain.CategoryGirlChild,
			Description:        "Awareness and service delivery for protection and education of girl child.",
			BenefitAmount:      50000,
			BenefitDescription: "Education and welfare grants for girl children",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "bb_1", Kind: domain.RuleHasDaughters, Condition: "==", Value: "true", Description: "Must have at least one daughter"},
			},
			RequiredDocuments: []string{"aadhaar", "birth_certificate", "income_certificate"},
			PortalURL:         "https://wcd.nic.in/bbbp-schemes",
			ExecutionTier:     2,
			ApprovalRate:      0.75,
			ProcessingDays:    45,
			ConflictsWith:     []string{"sukanya_samriddhi"},
		},
		{
			ID:                 "pm_matru_vandana",
			Name:               "Pradhan Mantri Matru Vandana Yojana",
			Ministry:           "Ministry of Women & Child Development",
			Category:           domain.CategoryMaternity,
			Description:        "Cash incentive for first-time pregnant and lactating mothers.",
			BenefitAmount:      5000,
			BenefitDescription: "₹5,000 in three installments during pregnancy",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "mv_1", Kind: domain.RuleGender, Condition: "==", Value: "female", Description: "Must be female"},
				{ID: "mv_2", Kind: domain.RulePregnant, Condition: "==", Value: "true", Description: "Must be pregnant or lactating"},
				{ID: "mv_3", Kind: domain.RuleAgeMin, Condition: ">=", Value: "19", Description: "Age ≥ 19"},
			},
			RequiredDocuments: []string{"aadhaar", "bank_statement", "income_certificate"},
			PortalURL:         "https://wcd.nic.in/schemes/pradhan-mantri-matru-vandana-yojana",
			ExecutionTier:     2,
			ApprovalRate:      0.78,
			ProcessingDays:    30,
		},
		{
			ID:                 "nsap_pension",
			Name:               "Indira Gandhi National Old Age Pension",
			Ministry:           "Ministry of Rural Development",
			Category:           domain.CategoryPension,
			Description:        "Monthly pension for BPL citizens aged 60+ (₹200–₹500/month).",
			BenefitAmount:      6000,
			BenefitDescription: "₹200-500/month pension for elderly BPL citizens",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "nsap_1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "60", Description: "Age ≥ 60"},
				{ID: "nsap_2", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "Must belong to BPL household"},
			},
			RequiredDocuments: []string{"aadhaar", "bpl_card", "bank_statement", "income_certificate"},
			PortalURL:         "https://nsap.nic.in",
			ExecutionTier:     2,
			ApprovalRate:      0.70,
			ProcessingDays:    60,
		},
		{
			ID:                 "atal_pension",
			Name:               "Atal Pension Yojana",
			Ministry:           "Ministry of Finance",
			Category:           domain.CategoryPension,
			Description:        "Guaranteed minimum pension of ₹1,000–₹5,000 for unorganized sector workers.",
			BenefitAmount:      60000,
			BenefitDescription: "₹1,000–₹5,000/month pension after 60 years of age",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "apy_1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18", Description: "Age ≥ 18"},
				{ID: "apy_2", Kind: domain.RuleAgeMax, Condition: "<=", Value: "40", Description: "Age ≤ 40"},
				{ID: "apy_3", Kind: domain.RuleIncomeMax, Condition: "<=", Value: "180000", Description: "Annual income ≤ ₹1.8 lakh (tax-exempt)"},
			},
			RequiredDocuments: []string{"aadhaar", "bank_statement"},
			PortalURL:         "https://www.npscra.nsdl.co.in/scheme-details.php",
			ExecutionTier:     1,
			ApprovalRate:      0.88,
			ProcessingDays:    14,
		},
		{
			ID:                 "national_scholarship",
			Name:               "National Scholarship Portal — Post-Matric Scholarship",
			Ministry:           "Ministry of Social Justice",
			Category:           domain.CategoryScholarship,
			Description:        "Financial assistance for SC/ST/OBC/Minority students for post-matric education.",
			BenefitAmount:      36000,
			BenefitDescription: "Tuition fee + maintenance allowance up to ₹36,000/year",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "nsp_1", Kind: domain.RuleCaste, Condition: "in", Value: "sc,st,obc", Description: "Must be SC/ST/OBC"},
				{ID: "nsp_2", Kind: domain.RuleEducationMin, Condition: ">=", Value: "higher_secondary", Description: "Completed higher secondary"},
				{ID: "nsp_3", Kind: domain.RuleIncomeMax, Condition: "<=", Value: "250000", Description: "Family income ≤ ₹2.5 lakh"},
			},
			RequiredDocuments: []string{"aadhaar", "caste_certificate", "income_certificate", "educational_certificate", "bank_statement"},
			PortalURL:         "https://scholarships.gov.in",
			ExecutionTier:     1,
			ApprovalRate:      0.72,
			ProcessingDays:    45,
		},
		{
			ID:                 "ayushman_bharat",
			Name:               "Ayushman Bharat — PM Jan Arogya Yojana",
			Ministry:           "Ministry of Health & Family Welfare",
			Category:           domain.CategoryHealthcare,
			Description:        "Health insurance cover of ₹5 lakh per family per year for secondary and tertiary hospitalization.",
			BenefitAmount:      500000,
			BenefitDescription: "₹5 lakh per family per year health cover",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "ab_1", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "BPL or deprived household"},
				{ID: "ab_2", Kind: domain.RuleIncomeMax, Condition: "<=", Value: "300000", Description: "Annual income ≤ ₹3 lakh"},
			},
			RequiredDocuments: []string{"aadhaar", "ration_card", "income_certificate"},
			PortalURL:         "https://pmjay.gov.in",
			ExecutionTier:     1,
			ApprovalRate:      0.82,
			ProcessingDays:    14,
		},
		{
			ID:                 "mudra_loan",
			Name:               "Pradhan Mantri Mudra Yojana",
			Ministry:           "Ministry of Finance",
			Category:           domain.CategoryEntrepreneurship,
			Description:        "Collateral-free loans up to ₹10 lakh for micro/small enterprises.",
			BenefitAmount:      1000000,
			BenefitDescription: "Loans: Shishu (≤₹50K), Kishore (≤₹5L), Tarun (≤₹10L)",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "mud_1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18", Description: "Age ≥ 18"},
				{ID: "mud_2", Kind: domain.RuleOccupation, Condition: "in", Value: "self_employed,farmer", Description: "Self-employed or micro-enterprise"},
			},
			RequiredDocuments: []string{"aadhaar", "pan", "bank_statement", "income_certificate"},
			PortalURL:         "https://www.mudra.org.in",
			ExecutionTier:     2,
			ApprovalRate:      0.68,
			ProcessingDays:    30,
		},
		{
			ID:                 "disability_pension",
			Name:               "Indira Gandhi National Disability Pension",
			Ministry:           "Ministry of Social Justice & Empowerment",
			Category:           domain.CategoryDisability,
			Description:        "Monthly pension for severely disabled BPL citizens aged 18–79.",
			BenefitAmount:      3600,
			BenefitDescription: "₹300/month pension for disabled BPL citizens",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "dp_1", Kind: domain.RuleDisability, Condition: "==", Value: "true", Description: "Must have ≥80% disability"},
				{ID: "dp_2", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18", Description: "Age ≥ 18"},
				{ID: "dp_3", Kind: domain.RuleAgeMax, Condition: "<=", Value: "79", Description: "Age ≤ 79"},
				{ID: "dp_4", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "BPL household"},
			},
			RequiredDocuments: []string{"aadhaar", "disability_certificate", "bpl_card", "bank_statement"},
			PortalURL:         "https://nsap.nic.in",
			ExecutionTier:     2,
			ApprovalRate:      0.72,
			ProcessingDays:    45,
		},
		{
			ID:                 "nfsa_ration",
			Name:               "National Food Security Act — Subsidized Ration",
			Ministry:           "Ministry of Consumer Affairs",
			Category:           domain.CategoryFoodSecurity,
			Description:        "Subsidized food grains (rice ₹3/kg, wheat ₹2/kg) via PDS for BPL families.",
			BenefitAmount:      7200,
			BenefitDescription: "5 kg/person/month at ₹1–₹3/kg (35 kg for Antyodaya)",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "nfsa_1", Kind: domain.RuleBPL, Condition: "==", Value: "true", Description: "BPL household"},
			},
			RequiredDocuments: []string{"aadhaar", "ration_card", "income_certificate"},
			PortalURL:         "https://nfsa.gov.in",
			ExecutionTier:     2,
			ApprovalRate:      0.88,
			ProcessingDays:    30,
		},
		{
			ID:                 "standup_india",
			Name:               "Stand-Up India Scheme",
			Ministry:           "Ministry of Finance",
			Category:           domain.CategoryEntrepreneurship,
			Description:        "Bank loans ₹10 lakh–₹1 crore for SC/ST and women entrepreneurs for greenfield enterprises.",
			BenefitAmount:      10000000,
			BenefitDescription: "Loans ₹10 lakh to ₹1 crore for greenfield enterprise",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "sui_1", Kind: domain.RuleAgeMin, Condition: ">=", Value: "18", Description: "Age ≥ 18"},
				{ID: "sui_2", Kind: domain.RuleCustom, Condition: "sc_st_or_female", Value: "true", Description: "Must be SC/ST or female"},
			},
			RequiredDocuments: []string{"aadhaar", "pan", "caste_certificate", "bank_statement", "income_certificate"},
			PortalURL:         "https://www.standupmitra.in",
			ExecutionTier:     2,
			ApprovalRate:      0.55,
			ProcessingDays:    60,
			DependsOn:         []string{"pm_jan_dhan"},
		},
		{
			ID:                 "pm_fasal_bima",
			Name:               "Pradhan Mantri Fasal Bima Yojana",
			Ministry:           "Ministry of Agriculture & Farmers Welfare",
			Category:           domain.CategoryInsurance,
			Description:        "Crop insurance at subsidized premiums for farmers against natural calamities.",
			BenefitAmount:      200000,
			BenefitDescription: "Crop insurance cover up to ₹2 lakh with 2% premium",
			EligibilityRules: []domain.EligibilityRule{
				{ID: "pfb_1", Kind: domain.RuleOccupation, Condition: "==", Value: "farmer", Description: "Must be a farmer"},
			},
			RequiredDocuments: []string{"aadhaar", "bank_statement", "income_certificate"},
			PortalURL:         "https://pmfby.gov.in",
			ExecutionTier:     1,
			ApprovalRate:      0.80,
			ProcessingDays:    21,
			DependsOn:         []string{"pm_kisan"},
		},
	}
}
