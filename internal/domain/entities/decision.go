package entities

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Field length limits for decisions.
const (
	MaxTitleLen         = 200
	MaxDescriptionLen   = 5000
	MaxFinalDecisionLen = 500
)

// RatingMax is the upper bound for importance and review ratings. The lower
// bound is zero; both bounds are inclusive.
const RatingMax = 5

// DateLayout is the calendar-date format used for Decision.Date.
const DateLayout = "2006-01-02"

// Decision is a single recorded choice. Insertion order in the document is
// meaningful (newest first by convention, not enforced).
type Decision struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	FinalDecision string    `json:"finalDecision"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	Importance    int       `json:"importance"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Reviews       []Review  `json:"reviews"`
}

// NewDecision creates a decision with a fresh ID and timestamps. Tags are
// deduplicated; duplicates already present in loaded documents are tolerated.
func NewDecision(title, description, finalDecision, date string, importance int, tags []string) *Decision {
	now := time.Now().UTC()
	return &Decision{
		ID:            uuid.New().String(),
		Title:         title,
		FinalDecision: finalDecision,
		Description:   description,
		Date:          date,
		Importance:    importance,
		Tags:          DedupeTags(tags),
		CreatedAt:     now,
		UpdatedAt:     now,
		Reviews:       []Review{},
	}
}

// Touch updates the decision's modification timestamp. CreatedAt is never
// altered after creation.
func (d *Decision) Touch() {
	d.UpdatedAt = time.Now().UTC()
}

// Review returns a pointer to the review with the given ID, or nil.
func (d *Decision) Review(id string) *Review {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return &d.Reviews[i]
		}
	}
	return nil
}

// RemoveReview deletes the review with the given ID, preserving order.
// Returns false if no such review exists.
func (d *Decision) RemoveReview(id string) bool {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			d.Reviews = append(d.Reviews[:i], d.Reviews[i+1:]...)
			return true
		}
	}
	return false
}

// Validate checks the decision and its owned reviews.
func (d *Decision) Validate() error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Title, validation.Required, validation.Length(1, MaxTitleLen)),
		validation.Field(&d.Description, validation.Length(0, MaxDescriptionLen)),
		validation.Field(&d.FinalDecision, validation.Length(0, MaxFinalDecisionLen)),
		validation.Field(&d.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&d.Importance, validation.Min(0), validation.Max(RatingMax)),
	)
	if err != nil {
		return err
	}
	for i := range d.Reviews {
		if err := d.Reviews[i].Validate(); err != nil {
			return fmt.Errorf("review %d (%s): %w", i, d.Reviews[i].ID, err)
		}
	}
	return nil
}

// DedupeTags returns tags with exact duplicates removed, preserving first
// occurrence order. Tags are trimmed; empty tags are dropped.
func DedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
