package services

import (
	"errors"
	"fmt"

	"github.com/seanwalsh/declog/internal/domain/entities"
)

// ErrNoOpenDocument is returned by journal operations when no document is
// open in the session.
var ErrNoOpenDocument = errors.New("no document is open")

// ErrDecisionNotFound is returned when a decision ID does not exist in the
// open document.
var ErrDecisionNotFound = errors.New("decision not found")

// ErrReviewNotFound is returned when a review ID does not exist on the
// targeted decision.
var ErrReviewNotFound = errors.New("review not found")

// DecisionInput carries the user-editable fields of a decision. Pointer
// fields distinguish "leave unchanged" from "set to empty" on updates.
type DecisionInput struct {
	Title         *string
	Description   *string
	FinalDecision *string
	Date          *string
	Importance    *int
	Tags          []string
}

// ReviewInput carries the user-editable fields of a review.
type ReviewInput struct {
	OutcomeRating  *int
	ThesisAccuracy *int
	LuckRating     *int
	Notes          *string
}

// JournalService mutates the open document: adding, editing, and removing
// decisions and their reviews. All mutation is in memory; durability happens
// only when the caller saves through the sync service.
type JournalService struct {
	session *Session
}

// NewJournalService creates a new journal service.
func NewJournalService(session *Session) *JournalService {
	return &JournalService{session: session}
}

// AddDecision creates a decision from the input and prepends it to the open
// document (newest first by convention).
func (s *JournalService) AddDecision(in DecisionInput) (*entities.Decision, error) {
	doc, ok := s.session.Current()
	if !ok {
		return nil, ErrNoOpenDocument
	}

	dec := entities.NewDecision(
		deref(in.Title), deref(in.Description), deref(in.FinalDecision),
		deref(in.Date), derefInt(in.Importance), in.Tags,
	)
	if err := dec.Validate(); err != nil {
		return nil, fmt.Errorf("validating decision: %w", err)
	}

	doc.Decisions = append([]entities.Decision{*dec}, doc.Decisions...)
	doc.Touch()
	return doc.Decision(dec.ID), nil
}

// UpdateDecision applies the set fields of the input to an existing
// decision. CreatedAt is preserved; UpdatedAt advances.
func (s *JournalService) UpdateDecision(id string, in DecisionInput) (*entities.Decision, error) {
	doc, ok := s.session.Current()
	if !ok {
		return nil, ErrNoOpenDocument
	}
	dec := doc.Decision(id)
	if dec == nil {
		return nil, fmt.Errorf("%w: %s", ErrDecisionNotFound, id)
	}

	updated := *dec
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.FinalDecision != nil {
		updated.FinalDecision = *in.FinalDecision
	}
	if in.Date != nil {
		updated.Date = *in.Date
	}
	if in.Importance != nil {
		updated.Importance = *in.Importance
	}
	if in.Tags != nil {
		updated.Tags = entities.DedupeTags(in.Tags)
	}
	updated.Touch()
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("validating decision: %w", err)
	}

	*dec = updated
	doc.Touch()
	return dec, nil
}

// RemoveDecision deletes a decision and all reviews it owns.
func (s *JournalService) RemoveDecision(id string) error {
	doc, ok := s.session.Current()
	if !ok {
		return ErrNoOpenDocument
	}
	if !doc.RemoveDecision(id) {
		return fmt.Errorf("%w: %s", ErrDecisionNotFound, id)
	}
	doc.Touch()
	return nil
}

// AddReview appends a review to a decision.
func (s *JournalService) AddReview(decisionID string, in ReviewInput) (*entities.Review, error) {
	doc, ok := s.session.Current()
	if !ok {
		return nil, ErrNoOpenDocument
	}
	dec := doc.Decision(decisionID)
	if dec == nil {
		return nil, fmt.Errorf("%w: %s", ErrDecisionNotFound, decisionID)
	}

	rev := entities.NewReview(
		derefInt(in.OutcomeRating), derefInt(in.ThesisAccuracy),
		derefInt(in.LuckRating), deref(in.Notes),
	)
	if err := rev.Validate(); err != nil {
		return nil, fmt.Errorf("validating review: %w", err)
	}

	dec.Reviews = append(dec.Reviews, *rev)
	dec.Touch()
	doc.Touch()
	return dec.Review(rev.ID), nil
}

// UpdateReview applies the set fields of the input to an existing review.
// CreatedAt is immutable; edits mutate rating and notes fields only.
func (s *JournalService) UpdateReview(decisionID, reviewID string, in ReviewInput) (*entities.Review, error) {
	doc, ok := s.session.Current()
	if !ok {
		return nil, ErrNoOpenDocument
	}
	dec := doc.Decision(decisionID)
	if dec == nil {
		return nil, fmt.Errorf("%w: %s", ErrDecisionNotFound, decisionID)
	}
	rev := dec.Review(reviewID)
	if rev == nil {
		return nil, fmt.Errorf("%w: %s", ErrReviewNotFound, reviewID)
	}

	updated := *rev
	if in.OutcomeRating != nil {
		updated.OutcomeRating = *in.OutcomeRating
	}
	if in.ThesisAccuracy != nil {
		updated.ThesisAccuracy = *in.ThesisAccuracy
	}
	if in.LuckRating != nil {
		updated.LuckRating = *in.LuckRating
	}
	if in.Notes != nil {
		updated.Notes = *in.Notes
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("validating review: %w", err)
	}

	*rev = updated
	dec.Touch()
	doc.Touch()
	return rev, nil
}

// RemoveReview deletes a review from a decision.
func (s *JournalService) RemoveReview(decisionID, reviewID string) error {
	doc, ok := s.session.Current()
	if !ok {
		return ErrNoOpenDocument
	}
	dec := doc.Decision(decisionID)
	if dec == nil {
		return fmt.Errorf("%w: %s", ErrDecisionNotFound, decisionID)
	}
	if !dec.RemoveReview(reviewID) {
		return fmt.Errorf("%w: %s", ErrReviewNotFound, reviewID)
	}
	dec.Touch()
	doc.Touch()
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
