package week

import "time"

// Canonical day names. The week starts on Monday.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Days is the canonical Monday-first week ordering. All day-indexed
// vectors produced by the analytics projections follow this order.
var Days = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// CanonicalIndex returns the Monday-first index (0-6) of a day name.
// PRE: none
// POST: Returns the index, or -1 if day is not a canonical day name
func CanonicalIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// IsValidDay reports whether day is one of the seven canonical day names.
// Matching is exact; lowercase or abbreviated names are not valid.
func IsValidDay(day string) bool {
	return CanonicalIndex(day) >= 0
}

// DayName returns the canonical day name for a calendar date.
// Go's Sunday-first weekday index maps to canonical index 6,
// Monday through Saturday map to 0-5.
// PRE: none
// POST: Returns one of the seven canonical day names
func DayName(date time.Time) string {
	wd := int(date.Weekday())
	if wd == 0 {
		return Days[6]
	}
	return Days[wd-1]
}

// DateForDay returns the date within ref's week that falls on the target day.
// The reference date is assumed to lie inside the week of interest; the
// result is ref shifted by the difference of the two canonical indices.
// No time-zone conversion is performed.
// PRE: targetDay is a canonical day name
// POST: DayName(result) == targetDay; returns ref unchanged for invalid targetDay
func DateForDay(targetDay string, ref time.Time) time.Time {
	ti := CanonicalIndex(targetDay)
	if ti < 0 {
		return ref
	}
	ri := CanonicalIndex(DayName(ref))
	return ref.AddDate(0, 0, ti-ri)
}
