package client

import (
	"context"
	"errors"
	"testing"

	"patient-record-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyLister struct {
	patients []models.Patient
	fail     bool
}

func (l *flakyLister) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if l.fail {
		return nil, errors.New("list failed")
	}
	return l.patients, nil
}

func TestSyncRefreshReplacesWorkingCopy(t *testing.T) {
	lister := &flakyLister{patients: []models.Patient{{ID: "k1"}, {ID: "k2"}}}
	state := NewSyncState(lister, nil)

	require.NoError(t, state.Refresh(context.Background()))
	assert.Equal(t, 2, state.Len())

	lister.patients = []models.Patient{{ID: "k3"}}
	require.NoError(t, state.Refresh(context.Background()))

	snapshot := state.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "k3", snapshot[0].ID)
}

func TestSyncRefreshFailureKeepsPriorCopy(t *testing.T) {
	lister := &flakyLister{patients: []models.Patient{{ID: "k1"}}}
	state := NewSyncState(lister, nil)

	require.NoError(t, state.Refresh(context.Background()))

	lister.fail = true
	err := state.Refresh(context.Background())
	require.Error(t, err)

	snapshot := state.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "k1", snapshot[0].ID)
}

func TestSyncRemoveLocal(t *testing.T) {
	lister := &flakyLister{patients: []models.Patient{{ID: "k1"}, {ID: "k2"}, {ID: "k3"}}}
	state := NewSyncState(lister, nil)
	require.NoError(t, state.Refresh(context.Background()))

	state.RemoveLocal("k2")

	snapshot := state.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "k1", snapshot[0].ID)
	assert.Equal(t, "k3", snapshot[1].ID)

	// Removing an absent key is a no-op.
	state.RemoveLocal("k2")
	assert.Equal(t, 2, state.Len())
}

func TestSyncSnapshotIsACopy(t *testing.T) {
	lister := &flakyLister{patients: []models.Patient{{ID: "k1", FirstName: "Ann"}}}
	state := NewSyncState(lister, nil)
	require.NoError(t, state.Refresh(context.Background()))

	snapshot := state.Snapshot()
	snapshot[0].FirstName = "changed"

	assert.Equal(t, "Ann", state.Snapshot()[0].FirstName)
}
