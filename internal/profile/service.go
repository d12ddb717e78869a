package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"jansetu/internal/domain"
	dErrors "jansetu/pkg/domain-errors"
	"jansetu/pkg/platform/sentinel"
	"jansetu/pkg/requestcontext"
)

// Service implements citizen profile management on top of a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a profile service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create assigns a citizen ID and persists the profile. The incoming profile
// must not carry an ID; timestamps are set from the request clock.
func (s *Service) Create(ctx context.Context, profile *domain.CitizenProfile) (*domain.CitizenProfile, error) {
	if profile.CitizenID != "" {
		return nil, dErrors.New(dErrors.CodeValidation, "citizen_id is assigned by the server")
	}

	now := requestcontext.Now(ctx)
	profile.CitizenID = newCitizenID()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := s.store.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.InfoContext(ctx, "citizen profile created",
		"citizen_id", profile.CitizenID,
	)
	return profile, nil
}

// Get fetches a profile by citizen ID.
func (s *Service) Get(ctx context.Context, citizenID string) (*domain.CitizenProfile, error) {
	profile, err := s.store.Get(ctx, citizenID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "citizen not found: "+citizenID)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Update merges the given fields onto the stored profile and persists the
// result. CitizenID and CreatedAt cannot be changed.
func (s *Service) Update(ctx context.Context, citizenID string, updates map[string]json.RawMessage) (*domain.CitizenProfile, error) {
	profile, err := s.Get(ctx, citizenID)
	if err != nil {
		return nil, err
	}

	delete(updates, "citizen_id")
	delete(updates, "created_at")

	patched, err := mergeProfile(profile, updates)
	if err != nil {
		return nil, err
	}
	patched.CitizenID = citizenID
	patched.CreatedAt = profile.CreatedAt
	patched.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Save(ctx, patched); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.InfoContext(ctx, "citizen profile updated",
		"citizen_id", citizenID,
		"fields", len(updates),
	)
	return patched, nil
}

// Delete removes a profile entirely. This is the data erasure path, so a
// missing profile reports not found rather than succeeding silently.
func (s *Service) Delete(ctx context.Context, citizenID string) error {
	if err := s.store.Delete(ctx, citizenID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "citizen not found: "+citizenID)
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	s.logger.InfoContext(ctx, "citizen profile deleted",
		"citizen_id", citizenID,
	)
	return nil
}

// FieldConflict reports one field whose stored value differs from newly
// supplied data. The new value wins.
type FieldConflict struct {
	Field         string `json:"field"`
	ExistingValue string `json:"existing_value"`
	NewValue      string `json:"new_value"`
	Resolution    string `json:"resolution"`
}

// ResolveConflicts compares new field values with the stored profile and
// returns the conflicts found. Empty new values never conflict.
func (s *Service) ResolveConflicts(ctx context.Context, citizenID string, newData map[string]string) ([]FieldConflict, error) {
	profile, err := s.Get(ctx, citizenID)
	if err != nil {
		return nil, err
	}

	existing := profileFieldStrings(profile)

	var conflicts []FieldConflict
	for field, newVal := range newData {
		if field == "citizen_id" || field == "created_at" || newVal == "" {
			continue
		}
		oldVal, ok := existing[field]
		if ok && oldVal != "" && oldVal != newVal {
			conflicts = append(conflicts, FieldConflict{
				Field:         field,
				ExistingValue: oldVal,
				NewValue:      newVal,
				Resolution:    "new_value_preferred",
			})
		}
	}
	return conflicts, nil
}

// BuildProfilePatch maps document extraction results onto profile fields.
// Later extractions overwrite earlier ones for overlapping fields.
func BuildProfilePatch(extractions []domain.ExtractionResult) map[string]json.RawMessage {
	patch := make(map[string]json.RawMessage)
	set := func(field, value string) {
		if value != "" {
			encoded, _ := json.Marshal(value)
			patch[field] = encoded
		}
	}

	for _, ext := range extractions {
		fields := ext.ExtractedFields
		switch ext.DocumentType {
		case domain.DocAadhaar:
			set("name", fields["name"])
			set("date_of_birth", fields["date_of_birth"])
			set("gender", fields["gender"])
			set("aadhaar_number", fields["aadhaar_number"])
			if addr := fields["address"]; addr != "" {
				encoded, _ := json.Marshal(domain.Address{Line1: addr})
				patch["address"] = encoded
			}
		case domain.DocPAN:
			set("pan_number", fields["pan_number"])
		case domain.DocIncomeCert:
			if raw := fields["annual_income"]; raw != "" {
				cleaned := strings.ReplaceAll(raw, ",", "")
				patch["annual_income"] = json.RawMessage(cleaned)
			}
		case domain.DocCasteCert:
			set("caste_category", fields["caste_category"])
		case domain.DocBankStatement:
			set("bank_account", fields["account_number"])
			set("bank_ifsc", fields["ifsc_code"])
		}
	}
	return patch
}

func newCitizenID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CIT-" + strings.ToUpper(raw[:8])
}

// mergeProfile overlays raw JSON field values onto a profile copy.
func mergeProfile(profile *domain.CitizenProfile, updates map[string]json.RawMessage) (*domain.CitizenProfile, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	for field, value := range updates {
		doc[field] = value
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode merged profile: %w", err)
	}
	var patched domain.CitizenProfile
	if err := json.Unmarshal(merged, &patched); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, "updates do not match profile fields")
	}
	return &patched, nil
}

// profileFieldStrings flattens the scalar profile fields for comparison.
func profileFieldStrings(p *domain.CitizenProfile) map[string]string {
	out := map[string]string{
		"name":           p.Name,
		"date_of_birth":  p.DateOfBirth,
		"gender":         string(p.Gender),
		"aadhaar_number": p.AadhaarNumber,
		"pan_number":     p.PANNumber,
		"phone":          p.Phone,
		"email":          p.Email,
		"caste_category": string(p.CasteCategory),
		"religion":       p.Religion,
		"occupation":     string(p.Occupation),
		"education":      string(p.Education),
		"bank_account":   p.BankAccount,
		"bank_ifsc":      p.BankIFSC,
	}
	if p.Age > 0 {
		out["age"] = fmt.Sprintf("%d", p.Age)
	}
	if p.AnnualIncome > 0 {
		out["annual_income"] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", p.AnnualIncome), "0"), ".")
	}
	return out
}
