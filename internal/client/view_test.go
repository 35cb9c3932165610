package client

import (
	"slices"
	"testing"

	"patient-record-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(view *ListView, patients []models.Patient) []models.Patient {
	return slices.Collect(view.Project(patients))
}

func namedPatients() []models.Patient {
	return []models.Patient{
		{ID: "k1", FirstName: "Ann", LastName: "Lee"},
		{ID: "k2", FirstName: "Bob", LastName: "Ann"},
		{ID: "k3", FirstName: "Carla", LastName: "Reyes"},
	}
}

func TestProjectSortsByLastNameAscending(t *testing.T) {
	view := NewListView()

	got := collect(view, namedPatients())

	require.Len(t, got, 3)
	assert.Equal(t, "Ann", got[0].LastName)
	assert.Equal(t, "Lee", got[1].LastName)
	assert.Equal(t, "Reyes", got[2].LastName)
}

func TestProjectDescendingReversesAscending(t *testing.T) {
	view := NewListView()
	patients := namedPatients()

	asc := collect(view, patients)
	view.SortDirection = Descending
	desc := collect(view, patients)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestProjectFilterCaseInsensitive(t *testing.T) {
	view := NewListView()
	view.SearchTerm = "ann"

	got := collect(view, namedPatients())

	// Matches "Ann Lee" on first name and "Bob Ann" on last name.
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Contains(t, []string{"k1", "k2"}, p.ID)
	}
}

func TestProjectFilterIdempotent(t *testing.T) {
	view := NewListView()
	view.SearchTerm = "ann"

	once := collect(view, namedPatients())
	twice := collect(view, once)

	assert.Equal(t, once, twice)
}

func TestProjectFilterMatchesFullName(t *testing.T) {
	view := NewListView()
	view.SearchTerm = "ann lee"

	got := collect(view, namedPatients())

	require.Len(t, got, 1)
	assert.Equal(t, "k1", got[0].ID)
}

func TestProjectStableTieBreak(t *testing.T) {
	view := NewListView()
	patients := []models.Patient{
		{ID: "k1", FirstName: "Ann", LastName: "Lee"},
		{ID: "k2", FirstName: "Bob", LastName: "Lee"},
		{ID: "k3", FirstName: "Carla", LastName: "Lee"},
	}

	got := collect(view, patients)

	// Equal sort keys keep insertion order.
	require.Len(t, got, 3)
	assert.Equal(t, "k1", got[0].ID)
	assert.Equal(t, "k2", got[1].ID)
	assert.Equal(t, "k3", got[2].ID)
}

func TestProjectSortByDOB(t *testing.T) {
	view := NewListView()
	view.SortField = SortByDOB
	patients := []models.Patient{
		{ID: "k1", LastName: "Lee", DOB: models.NewDate(1995, 6, 1)},
		{ID: "k2", LastName: "Ann", DOB: models.NewDate(1980, 2, 15)},
	}

	got := collect(view, patients)

	require.Len(t, got, 2)
	assert.Equal(t, "k2", got[0].ID)
	assert.Equal(t, "k1", got[1].ID)
}

func TestProjectRestartable(t *testing.T) {
	view := NewListView()
	seq := view.Project(namedPatients())

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	view := NewListView()
	patients := namedPatients()
	original := slices.Clone(patients)

	_ = collect(view, patients)

	assert.Equal(t, original, patients)
}
