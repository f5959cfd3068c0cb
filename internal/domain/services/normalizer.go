// Package services contains the domain logic for loading, mutating, and
// syncing journal documents.
package services

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/ports"
)

// PlaceholderTitle substitutes a missing decision title during repair.
const PlaceholderTitle = "Untitled decision"

// Repair records a single silent fix applied while normalizing a loaded
// document. Repairs are diagnostics, not errors.
type Repair struct {
	Path   string
	Action string
}

func (r Repair) String() string {
	return r.Path + ": " + r.Action
}

// Normalizer converts loosely-structured parsed JSON into a canonical
// Document, tolerating missing and legacy fields. It runs on every load
// (remote read and local import) but never on save; a document already held
// in the session is assumed normalized.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer using the wall clock for synthesized
// timestamps.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: func() time.Time { return time.Now().UTC() }}
}

// Normalize parses raw bytes and repairs them into a Document satisfying all
// schema invariants. It returns the repairs performed. Unparseable content
// and decisions without an id are fatal: those fail with a SchemaError and
// no document is returned.
func (n *Normalizer) Normalize(data []byte) (*entities.Document, []Repair, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, ports.NewSchemaError(fmt.Sprintf("unparseable content: %v", err))
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, nil, ports.NewSchemaError("root must be an object")
	}

	var repairs []Repair
	doc := &entities.Document{}

	doc.Meta, repairs = n.normalizeMeta(obj["meta"], repairs)

	rawDecisions, ok := obj["decisions"].([]any)
	if !ok {
		if _, present := obj["decisions"]; present {
			repairs = append(repairs, Repair{Path: "decisions", Action: "replaced non-array with empty array"})
		} else {
			repairs = append(repairs, Repair{Path: "decisions", Action: "added missing array"})
		}
		rawDecisions = nil
	}

	doc.Decisions = make([]entities.Decision, 0, len(rawDecisions))
	for i, raw := range rawDecisions {
		dec, decRepairs, err := n.normalizeDecision(raw, i)
		if err != nil {
			return nil, nil, err
		}
		repairs = append(repairs, decRepairs...)
		doc.Decisions = append(doc.Decisions, *dec)
	}

	return doc, repairs, nil
}

func (n *Normalizer) normalizeMeta(raw any, repairs []Repair) (entities.Meta, []Repair) {
	obj, ok := raw.(map[string]any)
	if !ok {
		now := n.now()
		repairs = append(repairs, Repair{Path: "meta", Action: "synthesized default meta"})
		return entities.Meta{
			App:       entities.AppName,
			Version:   entities.SchemaVersion,
			CreatedAt: now,
			UpdatedAt: now,
		}, repairs
	}

	meta := entities.Meta{
		App:      stringField(obj, "app"),
		Version:  stringField(obj, "version"),
		Username: stringField(obj, "username"),
	}
	if meta.App == "" {
		meta.App = entities.AppName
	}
	if meta.Version == "" {
		meta.Version = entities.SchemaVersion
	}
	var ok1, ok2 bool
	meta.CreatedAt, ok1 = timeField(obj, "createdAt")
	meta.UpdatedAt, ok2 = timeField(obj, "updatedAt")
	if !ok1 {
		meta.CreatedAt = n.now()
		repairs = append(repairs, Repair{Path: "meta.createdAt", Action: "substituted current time"})
	}
	if !ok2 {
		meta.UpdatedAt = n.now()
		repairs = append(repairs, Repair{Path: "meta.updatedAt", Action: "substituted current time"})
	}
	return meta, repairs
}

func (n *Normalizer) normalizeDecision(raw any, index int) (*entities.Decision, []Repair, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ports.SchemaError{Reason: "decision is not an object", Index: index}
	}
	id := stringField(obj, "id")
	if id == "" {
		// Identity cannot be synthesized without risking collision with
		// data the user already references.
		return nil, nil, &ports.SchemaError{Reason: "decision missing id", Index: index}
	}

	var repairs []Repair
	path := func(field string) string { return fmt.Sprintf("decisions[%d].%s", index, field) }

	dec := &entities.Decision{
		ID:            id,
		Title:         stringField(obj, "title"),
		FinalDecision: stringField(obj, "finalDecision"),
		Description:   stringField(obj, "description"),
		Date:          stringField(obj, "date"),
	}
	if dec.Title == "" {
		dec.Title = PlaceholderTitle
		repairs = append(repairs, Repair{Path: path("title"), Action: "substituted placeholder title"})
	}

	var ok1 bool
	dec.Importance, ok1 = intField(obj, "importance")
	if !ok1 {
		repairs = append(repairs, Repair{Path: path("importance"), Action: "substituted 0 for non-integer"})
	}

	tags, tagsOK := stringSliceField(obj, "tags")
	dec.Tags = tags
	if !tagsOK {
		repairs = append(repairs, Repair{Path: path("tags"), Action: "substituted empty array"})
	}

	if dec.CreatedAt, ok = timeField(obj, "createdAt"); !ok {
		dec.CreatedAt = n.now()
		repairs = append(repairs, Repair{Path: path("createdAt"), Action: "substituted current time"})
	}
	if dec.UpdatedAt, ok = timeField(obj, "updatedAt"); !ok {
		dec.UpdatedAt = n.now()
		repairs = append(repairs, Repair{Path: path("updatedAt"), Action: "substituted current time"})
	}

	rawReviews, ok := obj["reviews"].([]any)
	if !ok {
		if _, present := obj["reviews"]; present {
			repairs = append(repairs, Repair{Path: path("reviews"), Action: "replaced non-array with empty array"})
		} else {
			repairs = append(repairs, Repair{Path: path("reviews"), Action: "added missing array"})
		}
		rawReviews = nil
	}
	dec.Reviews = make([]entities.Review, 0, len(rawReviews))
	for j, rawReview := range rawReviews {
		rev, revRepairs, err := n.normalizeReview(rawReview, index, j)
		if err != nil {
			return nil, nil, err
		}
		repairs = append(repairs, revRepairs...)
		dec.Reviews = append(dec.Reviews, *rev)
	}

	return dec, repairs, nil
}

func (n *Normalizer) normalizeReview(raw any, decisionIndex, reviewIndex int) (*entities.Review, []Repair, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ports.SchemaError{
			Reason: fmt.Sprintf("review %d is not an object", reviewIndex),
			Index:  decisionIndex,
		}
	}
	id := stringField(obj, "id")
	if id == "" {
		return nil, nil, &ports.SchemaError{
			Reason: fmt.Sprintf("review %d missing id", reviewIndex),
			Index:  decisionIndex,
		}
	}

	var repairs []Repair
	path := func(field string) string {
		return fmt.Sprintf("decisions[%d].reviews[%d].%s", decisionIndex, reviewIndex, field)
	}

	rev := &entities.Review{
		ID:    id,
		Notes: stringField(obj, "notes"),
	}
	var okT bool
	if rev.CreatedAt, okT = timeField(obj, "createdAt"); !okT {
		rev.CreatedAt = n.now()
		repairs = append(repairs, Repair{Path: path("createdAt"), Action: "substituted current time"})
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"outcomeRating", &rev.OutcomeRating},
		{"thesisAccuracy", &rev.ThesisAccuracy},
		{"luckRating", &rev.LuckRating},
	} {
		v, okI := intField(obj, f.name)
		*f.dst = v
		if !okI {
			repairs = append(repairs, Repair{Path: path(f.name), Action: "substituted 0 for non-integer"})
		}
	}

	return rev, repairs, nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// intField extracts an integer-valued JSON number. Returns (0, false) for
// missing, non-numeric, or fractional values.
func intField(obj map[string]any, key string) (int, bool) {
	f, ok := obj[key].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func timeField(obj map[string]any, key string) (time.Time, bool) {
	s, ok := obj[key].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// stringSliceField extracts a string array. The second return is false when
// the field is missing or not an array; non-string elements are skipped.
func stringSliceField(obj map[string]any, key string) ([]string, bool) {
	raw, ok := obj[key].([]any)
	if !ok {
		return []string{}, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
