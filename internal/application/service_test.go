package application

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/appeals"
	"jansetu/internal/domain"
	"jansetu/internal/knowledge"
	"jansetu/internal/profile"
	dErrors "jansetu/pkg/domain-errors"
)

// rollSeq replays a fixed sequence of dice, repeating the last value.
type rollSeq struct {
	rolls []float64
	i     int
}

func (r *rollSeq) Float64() float64 {
	if r.i >= len(r.rolls) {
		return r.rolls[len(r.rolls)-1]
	}
	v := r.rolls[r.i]
	r.i++
	return v
}

func alwaysSucceed() *rollSeq { return &rollSeq{rolls: []float64{0.0}} }
func alwaysFail() *rollSeq    { return &rollSeq{rolls: []float64{0.999}} }

func newTestService(t *testing.T, rng Randomizer) (*Service, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	graph := knowledge.Build(knowledge.Catalog())
	profiles := profile.NewService(profile.NewInMemoryStore(), logger)
	appealsSvc := appeals.NewService(logger)
	svc := NewService(graph, profiles, appealsSvc, NewInMemoryStore(), rng, logger, nil)

	citizen, err := profiles.Create(context.Background(), &domain.CitizenProfile{
		Name:          "Ramesh Kumar",
		Age:           30,
		AnnualIncome:  170000,
		AadhaarNumber: "123456789012",
		BankAccount:   "110012345678",
		CasteCategory: domain.CasteOBC,
		Address:       domain.Address{Line1: "12 Gandhi Road", City: "Jaipur", State: "Rajasthan", Pincode: "302001"},
		Documents:     []string{"aadhaar", "bank_statement"},
	})
	require.NoError(t, err)
	return svc, citizen.CitizenID
}

func TestSubmitSucceedsFirstAttempt(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^APP-[0-9A-F]{8}$`), app.ID)
	assert.Equal(t, citizenID, app.CitizenID)
	assert.Equal(t, domain.StatusSubmitted, app.Status)
	assert.Regexp(t, regexp.MustCompile(`^CONF-[0-9A-F]{10}$`), app.ConfirmationNumber)
	assert.NotNil(t, app.SubmissionDate)
	assert.NotNil(t, app.ExpectedDecision)
	require.Len(t, app.AuditTrail, 1)
	assert.Contains(t, app.AuditTrail[0].Action, "submission attempt 1")
	assert.True(t, app.AuditTrail[0].Success)
	assert.ElementsMatch(t, []string{"aadhaar", "bank_statement"}, app.DocumentsSubmitted)
}

func TestSubmitFallsBackToNextTier(t *testing.T) {
	// Three failures at tier 1, then success on the first tier 2 attempt.
	svc, citizenID := newTestService(t, &rollSeq{rolls: []float64{0.999, 0.999, 0.999, 0.0}})
	ctx := context.Background()

	// pm_jan_dhan runs at tier 1.
	app, err := svc.Submit(ctx, citizenID, "pm_jan_dhan")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSubmitted, app.Status)
	assert.Equal(t, 2, app.ExecutionTier)

	var fallbacks, failures int
	for _, entry := range app.AuditTrail {
		if strings.Contains(entry.Action, "fallback") {
			fallbacks++
		}
		if strings.Contains(entry.Action, "attempt") && !entry.Success {
			failures++
		}
	}
	assert.Equal(t, 1, fallbacks)
	assert.Equal(t, 3, failures)
}

func TestSubmitAllTiersExhausted(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysFail())
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "pm_jan_dhan")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, app.Status)
	assert.Empty(t, app.ConfirmationNumber)
	assert.Nil(t, app.SubmissionDate)
	assert.Equal(t, 3, app.ExecutionTier)

	last := app.AuditTrail[len(app.AuditTrail)-1]
	assert.Equal(t, "Submission failed", last.Action)

	// 3 attempts per tier across 3 tiers, plus 2 fallbacks and the final entry.
	assert.Len(t, app.AuditTrail, 12)
}

func TestSubmitUnknownScheme(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())

	_, err := svc.Submit(context.Background(), citizenID, "ghost_scheme")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func TestSubmitUnknownCitizen(t *testing.T) {
	svc, _ := newTestService(t, alwaysSucceed())

	_, err := svc.Submit(context.Background(), "CIT-MISSING", "atal_pension")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func TestGetAndList(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())
	ctx := context.Background()

	first, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, citizenID, "pm_jan_dhan")
	require.NoError(t, err)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	apps, err := svc.ListByCitizen(ctx, citizenID)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	_, err = svc.Get(ctx, "APP-MISSING")
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func TestPollStatusProgression(t *testing.T) {
	// Submission succeeds, then the review roll (0.1) moves it to under
	// review, and the decision roll (0.1) approves it.
	svc, citizenID := newTestService(t, &rollSeq{rolls: []float64{0.0, 0.1, 0.1}})
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)

	polled, err := svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnderReview, polled.Status)

	polled, err = svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, polled.Status)
	assert.NotEmpty(t, polled.DisbursementInfo)
}

func TestPollStatusRejection(t *testing.T) {
	// Review roll 0.1 advances, decision roll 0.25 lands in the rejection band.
	svc, citizenID := newTestService(t, &rollSeq{rolls: []float64{0.0, 0.1, 0.25}})
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)

	_, err = svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)
	polled, err := svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, polled.Status)
	assert.Equal(t, "Document verification discrepancy found", polled.RejectionReason)
	assert.NotNil(t, polled.RejectionDate)
}

func TestPollStatusMayStayPut(t *testing.T) {
	svc, citizenID := newTestService(t, &rollSeq{rolls: []float64{0.0, 0.9}})
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)

	polled, err := svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, polled.Status)
}

func TestAppealRejectedApplication(t *testing.T) {
	svc, citizenID := newTestService(t, &rollSeq{rolls: []float64{0.0, 0.1, 0.25}})
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)
	_, err = svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)
	_, err = svc.PollStatus(ctx, app.ID)
	require.NoError(t, err)

	appealed, letter, err := svc.Appeal(ctx, app.ID, "english")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAppealed, appealed.Status)
	assert.NotNil(t, appealed.AppealDate)
	assert.Equal(t, letter.Text, appealed.AppealLetter)
	assert.Contains(t, letter.Text, "Ramesh Kumar")
	require.NotNil(t, letter.Analysis)
	assert.Equal(t, appeals.CategoryDocumentDiscrepancy, letter.Analysis.Category)
}

func TestAppealRequiresRejectedStatus(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())
	ctx := context.Background()

	app, err := svc.Submit(ctx, citizenID, "atal_pension")
	require.NoError(t, err)

	_, _, err = svc.Appeal(ctx, app.ID, "english")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeConflict, dErrors.CodeOf(err))
}

func TestPrefilledForm(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())

	form, err := svc.PrefilledForm(context.Background(), citizenID, "atal_pension")
	require.NoError(t, err)

	assert.Equal(t, "atal_pension", form.SchemeID)
	assert.Equal(t, "XXXX-XXXX-9012", form.Fields["aadhaar_number"])
	assert.Equal(t, "XXXX5678", form.Fields["bank_account"])
	assert.Equal(t, "OBC", form.Fields["category"])
	assert.Equal(t, "170000", form.Fields["annual_income"])
	assert.Equal(t, "12 Gandhi Road, Jaipur, Rajasthan - 302001", form.Fields["address"])
	assert.Contains(t, form.MissingFields, "date_of_birth")
	assert.NotEmpty(t, form.Documents)
}

func TestPrefilledFormUnknownScheme(t *testing.T) {
	svc, citizenID := newTestService(t, alwaysSucceed())

	_, err := svc.PrefilledForm(context.Background(), citizenID, "ghost")
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}
