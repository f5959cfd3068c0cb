package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MaxNotesLen is the maximum length of review notes.
const MaxNotesLen = 2000

// Review is a point-in-time retrospective evaluation of a decision. Reviews
// are owned exclusively by their decision. CreatedAt is set once at creation
// and never altered; edits mutate the rating and notes fields only.
type Review struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	OutcomeRating  int       `json:"outcomeRating"`
	ThesisAccuracy int       `json:"thesisAccuracy"`
	LuckRating     int       `json:"luckRating"`
	Notes          string    `json:"notes"`
}

// NewReview creates a review with a fresh ID and creation timestamp.
func NewReview(outcome, thesis, luck int, notes string) *Review {
	return &Review{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now().UTC(),
		OutcomeRating:  outcome,
		ThesisAccuracy: thesis,
		LuckRating:     luck,
		Notes:          notes,
	}
}

// Validate checks the review's ratings and notes. All three ratings are
// independent integers in [0, RatingMax].
func (r *Review) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.OutcomeRating, validation.Min(0), validation.Max(RatingMax)),
		validation.Field(&r.ThesisAccuracy, validation.Min(0), validation.Max(RatingMax)),
		validation.Field(&r.LuckRating, validation.Min(0), validation.Max(RatingMax)),
		validation.Field(&r.Notes, validation.Length(0, MaxNotesLen)),
	)
}
