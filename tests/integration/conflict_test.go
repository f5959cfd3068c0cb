package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanwalsh/declog/internal/domain/ports"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// A save after an external modification fails with a conflict and transmits
// nothing; a forced save overwrites.
func TestConflictingSave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	desc, err := env.sync.Create(ctx, "jdoe")
	require.NoError(t, err)

	title := "Rent or buy"
	date := "2024-02-10"
	dec, err := env.journal.AddDecision(decisionInput(&title, &date, nil, nil))
	require.NoError(t, err)

	outcome := 3
	notes := "Too early to tell"
	_, err = env.journal.AddReview(dec.ID, services.ReviewInput{OutcomeRating: &outcome, Notes: &notes})
	require.NoError(t, err)
	require.NoError(t, env.sync.Save(ctx, false))

	// Another device writes the file.
	bumped := env.store.Bump(desc.ID)
	contentBefore := env.store.Content(desc.ID)
	writesBefore := env.store.WriteCount

	thesis := 5
	_, err = env.journal.UpdateReview(dec.ID, dec.Reviews[0].ID, services.ReviewInput{ThesisAccuracy: &thesis})
	require.NoError(t, err)

	err = env.sync.Save(ctx, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConflict))

	var conflict *ports.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, desc.ID, conflict.FileID)
	assert.True(t, conflict.RemoteModified.Equal(bumped))
	assert.True(t, conflict.RemoteModified.After(conflict.LastSynced))

	assert.Equal(t, writesBefore, env.store.WriteCount, "conflicted save must not reach the wire")
	assert.Equal(t, contentBefore, env.store.Content(desc.ID))

	// The local edit survives the failed save and can be forced through.
	require.NoError(t, env.sync.Save(ctx, true))
	assert.Equal(t, writesBefore+1, env.store.WriteCount)

	_, syncService, _ := env.newClient(t)
	doc, err := syncService.Load(ctx, desc.ID)
	require.NoError(t, err)
	require.Len(t, doc.Decisions, 1)
	require.Len(t, doc.Decisions[0].Reviews, 1)
	assert.Equal(t, 5, doc.Decisions[0].Reviews[0].ThesisAccuracy)
	assert.Equal(t, "Too early to tell", doc.Decisions[0].Reviews[0].Notes)
}

// After reloading the remote's newer copy, a save goes through without force.
func TestConflictResolvedByReload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	desc, err := env.sync.Create(ctx, "jdoe")
	require.NoError(t, err)
	env.store.Bump(desc.ID)

	title := "Lost edit"
	date := "2024-04-01"
	_, err = env.journal.AddDecision(decisionInput(&title, &date, nil, nil))
	require.NoError(t, err)

	err = env.sync.Save(ctx, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConflict))

	// Reload adopts the remote state and resets the baseline.
	_, err = env.sync.Load(ctx, desc.ID)
	require.NoError(t, err)

	title = "Fresh edit"
	_, err = env.journal.AddDecision(decisionInput(&title, &date, nil, nil))
	require.NoError(t, err)
	require.NoError(t, env.sync.Save(ctx, false))
}
