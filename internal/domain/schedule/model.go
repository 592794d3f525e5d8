package schedule

import (
	"errors"
	"time"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// Record status constants. Only active records contribute to activity
// aggregation and rankings; the others remain visible to raw listings.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCancelled = "cancelled"
)

// Entity type constants for the record's entity reference.
const (
	EntityTrainer = "trainer"
	EntityClass   = "class"
)

// Domain errors
var (
	ErrInvalidEntityType = errors.New("entity type must be trainer or class")
	ErrInvalidEntityID   = errors.New("entity id must be positive")
	ErrInvalidDay        = errors.New("day must be a canonical day of the week")
	ErrInvalidStatus     = errors.New("status must be active, inactive, or cancelled")
)

// Record represents one bookable occurrence of a class on a given day.
// A Record without a Date is a recurring weekly slot; a Record with a
// Date is a one-off dated slot.
type Record struct {
	ID              string
	EntityID        int    // normalized trainer or class id
	EntityType      string // trainer or class
	Day             string // canonical day name, e.g. "Monday"
	Date            string // optional, YYYY-MM-DD; empty for recurring slots
	StartTime       string // HH:MM format
	EndTime         string // HH:MM format
	DurationMinutes int    // explicit duration; 0 means derive from times
	Status          string
}

// Validate checks if the Record has valid data.
// PRE: Record struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Record) Validate() error {
	if r.EntityType != EntityTrainer && r.EntityType != EntityClass {
		return ErrInvalidEntityType
	}
	if r.EntityID <= 0 {
		return ErrInvalidEntityID
	}
	if !week.IsValidDay(r.Day) {
		return ErrInvalidDay
	}
	if r.Status != StatusActive && r.Status != StatusInactive && r.Status != StatusCancelled {
		return ErrInvalidStatus
	}
	return nil
}

// IsActive returns true if the record counts toward activity aggregates.
// INVARIANT: Status field is not mutated
func (r *Record) IsActive() bool {
	return r.Status == StatusActive
}

// Minutes resolves the record's duration in minutes. An explicit
// DurationMinutes wins; otherwise the duration is derived from
// EndTime - StartTime. Records with neither resolve to 0.
// PRE: StartTime and EndTime, if set, are in HH:MM format
// POST: Returns a non-negative duration; malformed times resolve to 0
func (r *Record) Minutes() int {
	if r.DurationMinutes > 0 {
		return r.DurationMinutes
	}
	start, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", r.EndTime)
	if err != nil {
		return 0
	}
	dur := end.Sub(start)
	if dur <= 0 {
		dur += 24 * time.Hour // handle overnight slots
	}
	return int(dur.Minutes())
}

// OccursOn reports whether the record occurs on the given date (YYYY-MM-DD).
// Dated records match only their exact date; recurring slots (no date)
// match any date by day name alone.
// PRE: date is in YYYY-MM-DD format and falls on dayName
// POST: Returns true if the record belongs in the given day's bucket
func (r *Record) OccursOn(date, dayName string) bool {
	if r.Day != dayName {
		return false
	}
	return r.Date == "" || r.Date == date
}
