package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/ports"
)

func TestNormalizer_RoundTripCanonicalDocument(t *testing.T) {
	doc := entities.NewDocument("jdoe")
	dec := entities.NewDecision("Accept offer", "Good team", "Accepted", "2024-03-01", 4, []string{"career", "money"})
	rev := entities.NewReview(3, 2, 1, "went well")
	dec.Reviews = append(dec.Reviews, *rev)
	doc.Decisions = append(doc.Decisions, *dec)

	data, err := Serialize(doc)
	require.NoError(t, err)

	got, repairs, err := NewNormalizer().Normalize(data)
	require.NoError(t, err)
	assert.Empty(t, repairs, "canonical documents need no repairs")
	assert.Equal(t, doc, got)
}

func TestNormalizer_UnparseableContent(t *testing.T) {
	_, _, err := NewNormalizer().Normalize([]byte("{not json"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrSchema))
}

func TestNormalizer_RootMustBeObject(t *testing.T) {
	for _, data := range []string{`[]`, `"text"`, `42`, `null`} {
		_, _, err := NewNormalizer().Normalize([]byte(data))

		require.Error(t, err, data)
		assert.True(t, errors.Is(err, ports.ErrSchema), data)
	}
}

func TestNormalizer_RepairsMissingMetaAndDecisions(t *testing.T) {
	doc, repairs, err := NewNormalizer().Normalize([]byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, entities.AppName, doc.Meta.App)
	assert.Equal(t, entities.SchemaVersion, doc.Meta.Version)
	assert.Empty(t, doc.Meta.Username)
	assert.False(t, doc.Meta.CreatedAt.IsZero())
	assert.NotNil(t, doc.Decisions)
	assert.Empty(t, doc.Decisions)
	assert.Len(t, repairs, 2)
}

func TestNormalizer_RepairsNonArrayDecisions(t *testing.T) {
	doc, repairs, err := NewNormalizer().Normalize([]byte(`{"decisions": "oops"}`))

	require.NoError(t, err)
	assert.Empty(t, doc.Decisions)
	assert.NotEmpty(t, repairs)
}

func TestNormalizer_DecisionMissingIDIsFatal(t *testing.T) {
	data := []byte(`{
		"meta": {},
		"decisions": [
			{"id": "a", "title": "first"},
			{"title": "no id"},
			{"id": "c", "title": "never reached"}
		]
	}`)

	doc, repairs, err := NewNormalizer().Normalize(data)

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Nil(t, repairs)

	var schemaErr *ports.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, 1, schemaErr.Index)
	assert.Contains(t, schemaErr.Reason, "missing id")
}

func TestNormalizer_RepairsDecisionFields(t *testing.T) {
	data := []byte(`{
		"meta": {"app": "declog", "version": "1", "username": "jdoe",
			"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"},
		"decisions": [
			{"id": "a", "importance": "high", "tags": "career"}
		]
	}`)

	doc, repairs, err := NewNormalizer().Normalize(data)

	require.NoError(t, err)
	require.Len(t, doc.Decisions, 1)
	dec := doc.Decisions[0]
	assert.Equal(t, PlaceholderTitle, dec.Title)
	assert.Equal(t, 0, dec.Importance)
	assert.NotNil(t, dec.Tags)
	assert.Empty(t, dec.Tags)
	assert.NotNil(t, dec.Reviews)
	assert.Empty(t, dec.Reviews)
	assert.NotEmpty(t, repairs)
}

func TestNormalizer_MissingReviewsBecomesEmptyArray(t *testing.T) {
	data := []byte(`{
		"meta": {},
		"decisions": [
			{"id": "a", "title": "Buy the house", "date": "2024-02-02",
				"importance": 3, "tags": [],
				"createdAt": "2024-02-02T10:00:00Z", "updatedAt": "2024-02-02T10:00:00Z"}
		]
	}`)

	doc, _, err := NewNormalizer().Normalize(data)

	require.NoError(t, err)
	require.Len(t, doc.Decisions, 1)
	assert.NotNil(t, doc.Decisions[0].Reviews)
	assert.Empty(t, doc.Decisions[0].Reviews)

	// The repaired document serializes with "reviews": [], not absent.
	out, err := Serialize(doc)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	decs := raw["decisions"].([]any)
	_, present := decs[0].(map[string]any)["reviews"]
	assert.True(t, present)
}

func TestNormalizer_FractionalImportanceRepairedToZero(t *testing.T) {
	data := []byte(`{"decisions": [{"id": "a", "title": "t", "importance": 3.5}]}`)

	doc, _, err := NewNormalizer().Normalize(data)

	require.NoError(t, err)
	assert.Equal(t, 0, doc.Decisions[0].Importance)
}

func TestNormalizer_ReviewRatingsRepaired(t *testing.T) {
	data := []byte(`{
		"decisions": [
			{"id": "a", "title": "t", "reviews": [
				{"id": "r1", "outcomeRating": "great", "thesisAccuracy": 2, "luckRating": 1}
			]}
		]
	}`)

	doc, _, err := NewNormalizer().Normalize(data)

	require.NoError(t, err)
	rev := doc.Decisions[0].Reviews[0]
	assert.Equal(t, 0, rev.OutcomeRating)
	assert.Equal(t, 2, rev.ThesisAccuracy)
	assert.Equal(t, 1, rev.LuckRating)
}

func TestNormalizer_ReviewMissingIDIsFatal(t *testing.T) {
	data := []byte(`{"decisions": [{"id": "a", "title": "t", "reviews": [{"notes": "x"}]}]}`)

	_, _, err := NewNormalizer().Normalize(data)

	require.Error(t, err)
	var schemaErr *ports.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, 0, schemaErr.Index)
}
