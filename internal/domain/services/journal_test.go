package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanwalsh/declog/internal/domain/entities"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func openJournal(t *testing.T) (*JournalService, *entities.Document) {
	t.Helper()
	session := NewSession()
	doc := entities.NewDocument("jdoe")
	session.Open("file-1", "decisionlog_jdoe_20240101T000000Z.json", doc, time.Now())
	return NewJournalService(session), doc
}

func TestJournalService_AddDecision_PrependsNewestFirst(t *testing.T) {
	svc, doc := openJournal(t)

	first, err := svc.AddDecision(DecisionInput{
		Title: strPtr("First"), Date: strPtr("2024-01-01"), Importance: intPtr(2),
	})
	require.NoError(t, err)

	second, err := svc.AddDecision(DecisionInput{
		Title: strPtr("Second"), Date: strPtr("2024-02-01"), Importance: intPtr(3),
	})
	require.NoError(t, err)

	require.Len(t, doc.Decisions, 2)
	assert.Equal(t, second.ID, doc.Decisions[0].ID)
	assert.Equal(t, first.ID, doc.Decisions[1].ID)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestJournalService_AddDecision_RejectsInvalidInput(t *testing.T) {
	svc, doc := openJournal(t)

	_, err := svc.AddDecision(DecisionInput{
		Title: strPtr("Too important"), Date: strPtr("2024-01-01"), Importance: intPtr(6),
	})

	assert.Error(t, err)
	assert.Empty(t, doc.Decisions)
}

func TestJournalService_AddDecision_DeduplicatesTags(t *testing.T) {
	svc, _ := openJournal(t)

	dec, err := svc.AddDecision(DecisionInput{
		Title: strPtr("Tagged"), Date: strPtr("2024-01-01"),
		Tags: []string{"career", "career", "money"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"career", "money"}, dec.Tags)
}

func TestJournalService_AddDecision_NoOpenDocument(t *testing.T) {
	svc := NewJournalService(NewSession())

	_, err := svc.AddDecision(DecisionInput{Title: strPtr("x"), Date: strPtr("2024-01-01")})

	assert.ErrorIs(t, err, ErrNoOpenDocument)
}

func TestJournalService_UpdateDecision_PreservesCreatedAt(t *testing.T) {
	svc, _ := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Original"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)
	created := dec.CreatedAt

	updated, err := svc.UpdateDecision(dec.ID, DecisionInput{Title: strPtr("Renamed")})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "2024-01-01", updated.Date, "unset fields stay unchanged")
	assert.Equal(t, created, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created))
}

func TestJournalService_UpdateDecision_InvalidLeavesDocumentUntouched(t *testing.T) {
	svc, doc := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Keep me"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)

	_, err = svc.UpdateDecision(dec.ID, DecisionInput{Importance: intPtr(-1)})

	require.Error(t, err)
	assert.Equal(t, "Keep me", doc.Decisions[0].Title)
	assert.Equal(t, 0, doc.Decisions[0].Importance)
}

func TestJournalService_RemoveDecision(t *testing.T) {
	svc, doc := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Doomed"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveDecision(dec.ID))
	assert.Empty(t, doc.Decisions)

	assert.ErrorIs(t, svc.RemoveDecision(dec.ID), ErrDecisionNotFound)
}

func TestJournalService_AddReview(t *testing.T) {
	svc, doc := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Reviewed"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)

	rev, err := svc.AddReview(dec.ID, ReviewInput{
		OutcomeRating: intPtr(3), ThesisAccuracy: intPtr(2), LuckRating: intPtr(1),
		Notes: strPtr("as expected"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, rev.ID)
	require.Len(t, doc.Decisions[0].Reviews, 1)
	assert.Equal(t, 3, doc.Decisions[0].Reviews[0].OutcomeRating)
}

func TestJournalService_AddReview_RejectsOutOfRangeRatings(t *testing.T) {
	svc, doc := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Reviewed"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)

	_, err = svc.AddReview(dec.ID, ReviewInput{OutcomeRating: intPtr(6)})

	assert.Error(t, err)
	assert.Empty(t, doc.Decisions[0].Reviews)
}

func TestJournalService_UpdateReview_CreatedAtImmutable(t *testing.T) {
	svc, _ := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Reviewed"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)
	rev, err := svc.AddReview(dec.ID, ReviewInput{OutcomeRating: intPtr(3)})
	require.NoError(t, err)
	created := rev.CreatedAt

	updated, err := svc.UpdateReview(dec.ID, rev.ID, ReviewInput{
		OutcomeRating: intPtr(5), Notes: strPtr("better than expected"),
	})

	require.NoError(t, err)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, 5, updated.OutcomeRating)
	assert.Equal(t, "better than expected", updated.Notes)
}

func TestJournalService_RemoveReview(t *testing.T) {
	svc, doc := openJournal(t)
	dec, err := svc.AddDecision(DecisionInput{Title: strPtr("Reviewed"), Date: strPtr("2024-01-01")})
	require.NoError(t, err)
	rev, err := svc.AddReview(dec.ID, ReviewInput{OutcomeRating: intPtr(3)})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveReview(dec.ID, rev.ID))
	assert.Empty(t, doc.Decisions[0].Reviews)

	assert.ErrorIs(t, svc.RemoveReview(dec.ID, rev.ID), ErrReviewNotFound)
}
