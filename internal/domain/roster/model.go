package roster

import "fmt"

// Entry kinds.
const (
	KindTrainer = "trainer"
	KindClass   = "class"
)

// Entry is the canonical roster view the analytics core consumes.
// Trainers and classes are converted into Entries at the boundary, so
// the aggregation, ranking and filter logic never branches on which
// raw field names a record carried.
type Entry struct {
	ID           int
	Kind         string   // trainer or class
	DisplayName  string
	SearchFields []string // lowercased haystack for free-text search
	Tag          string   // categorical tag: specialization or category
	Active       bool
	WeeklyDays   []string // optional recurrence override; nil means derive from schedules
}

// FallbackName composes the display name used when an entity has no
// usable name fields, e.g. "Trainer #42".
// PRE: kind is a roster kind constant
// POST: Returns "<Kind> #<id>" with the kind capitalized
func FallbackName(kind string, id int) string {
	label := "Entity"
	switch kind {
	case KindTrainer:
		label = "Trainer"
	case KindClass:
		label = "Class"
	}
	return fmt.Sprintf("%s #%d", label, id)
}

// IDSearchForms returns the two searchable renderings of a numeric id:
// the bare number and the "#<id>" form. A search for "42" must match an
// entity with id 42 even when no name field contains it.
func IDSearchForms(id int) []string {
	return []string{fmt.Sprintf("%d", id), fmt.Sprintf("#%d", id)}
}
