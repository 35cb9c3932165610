package client

import (
	"iter"
	"sort"
	"strings"

	"patient-record-service/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the record field the list is ordered by.
type SortField string

const (
	SortByLastName  SortField = "lastName"
	SortByFirstName SortField = "firstName"
	SortByDOB       SortField = "dob"
	SortByGender    SortField = "gender"
	SortByCondition SortField = "condition"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ListView derives the displayed record list from the working copy plus the
// search and sort state. It is a pure projection: inputs are never mutated.
type ListView struct {
	SearchTerm    string
	SortField     SortField
	SortDirection SortDirection

	collator *collate.Collator
}

// NewListView creates a projection with the default ordering: last name,
// ascending.
func NewListView() *ListView {
	return &ListView{
		SortField:     SortByLastName,
		SortDirection: Ascending,
		collator:      collate.New(language.English, collate.IgnoreCase),
	}
}

// Project returns the records matching the search term, in display order, as
// a restartable sequence. Every restart recomputes from the given input.
func (v *ListView) Project(patients []models.Patient) iter.Seq[models.Patient] {
	return func(yield func(models.Patient) bool) {
		for _, p := range v.apply(patients) {
			if !yield(p) {
				return
			}
		}
	}
}

func (v *ListView) apply(patients []models.Patient) []models.Patient {
	term := strings.ToLower(v.SearchTerm)

	// Case-insensitive substring match on "firstName lastName".
	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FullName()), term) {
			matched = append(matched, p)
		}
	}

	// Locale-aware comparison on the string form of the sort field; stable,
	// so equal keys keep their insertion order.
	sort.SliceStable(matched, func(i, j int) bool {
		cmp := v.collator.CompareString(v.fieldValue(matched[i]), v.fieldValue(matched[j]))
		if v.SortDirection == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return matched
}

func (v *ListView) fieldValue(p models.Patient) string {
	switch v.SortField {
	case SortByLastName:
		return p.LastName
	case SortByFirstName:
		return p.FirstName
	case SortByDOB:
		return p.DOB.String()
	case SortByGender:
		return p.Gender
	case SortByCondition:
		return p.Condition
	default:
		return ""
	}
}
