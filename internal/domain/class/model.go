package class

import (
	"errors"
	"strings"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
)

// Domain errors
var (
	ErrInvalidID       = errors.New("class id must be positive")
	ErrInvalidCapacity = errors.New("class capacity cannot be negative")
)

// Class holds a roster entry for one class offering.
type Class struct {
	ID         int
	Name       string
	Category   string // e.g. "Yoga", "Strength"
	TrainerID  int    // assigned trainer, 0 if unassigned
	Capacity   int
	Active     bool
	WeeklyDays []string // explicit weekly recurrence; overrides schedule-derived presence
}

// Validate checks if the Class has valid data.
// PRE: Class struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Class) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidID
	}
	if c.Capacity < 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// DisplayName returns the class name, falling back to "Class #<id>"
// when the name is blank.
func (c *Class) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return roster.FallbackName(roster.KindClass, c.ID)
}

// RosterEntry converts the class into the canonical roster view.
// PRE: Class has been validated
// POST: Returns an Entry with display name, search fields and tag populated
func (c *Class) RosterEntry() roster.Entry {
	fields := []string{c.DisplayName()}
	if c.Category != "" {
		fields = append(fields, c.Category)
	}
	fields = append(fields, roster.IDSearchForms(c.ID)...)
	return roster.Entry{
		ID:           c.ID,
		Kind:         roster.KindClass,
		DisplayName:  c.DisplayName(),
		SearchFields: fields,
		Tag:          c.Category,
		Active:       c.Active,
		WeeklyDays:   c.WeeklyDays,
	}
}
