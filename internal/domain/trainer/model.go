package trainer

import (
	"errors"
	"strings"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrInvalidID   = errors.New("trainer id must be positive")
	ErrNameTooLong = errors.New("trainer name cannot exceed 100 characters")
)

// Trainer holds a roster entry for one staff member.
type Trainer struct {
	ID             int
	FirstName      string
	LastName       string
	Email          string
	Specialization string
	Active         bool
	WeeklyDays     []string // explicit weekly recurrence; overrides schedule-derived presence
}

// Validate checks if the Trainer has valid data.
// PRE: Trainer struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (t *Trainer) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidID
	}
	if len(t.FirstName) > MaxNameLength || len(t.LastName) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// DisplayName joins first and last name with a single space. A trainer
// with neither name set falls back to "Trainer #<id>".
// INVARIANT: no field is mutated
func (t *Trainer) DisplayName() string {
	first := strings.TrimSpace(t.FirstName)
	last := strings.TrimSpace(t.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return roster.FallbackName(roster.KindTrainer, t.ID)
	}
}

// RosterEntry converts the trainer into the canonical roster view.
// PRE: Trainer has been validated
// POST: Returns an Entry with display name, search fields and tag populated
func (t *Trainer) RosterEntry() roster.Entry {
	fields := []string{t.DisplayName()}
	if t.Specialization != "" {
		fields = append(fields, t.Specialization)
	}
	fields = append(fields, roster.IDSearchForms(t.ID)...)
	return roster.Entry{
		ID:           t.ID,
		Kind:         roster.KindTrainer,
		DisplayName:  t.DisplayName(),
		SearchFields: fields,
		Tag:          t.Specialization,
		Active:       t.Active,
		WeeklyDays:   t.WeeklyDays,
	}
}
