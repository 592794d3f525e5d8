package projections

import (
	"time"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// DurationMatrix maps entity id -> canonical day name -> total minutes.
// Every roster entity carries all seven day cells, zero-defaulted; the
// roster, not the schedule set, decides which entities appear.
type DurationMatrix map[int]map[string]int

// newDurationMatrix allocates dense zero cells for every roster entity.
func newDurationMatrix(entries []roster.Entry) DurationMatrix {
	m := make(DurationMatrix, len(entries))
	for _, e := range entries {
		days := make(map[string]int, len(week.Days))
		for _, d := range week.Days {
			days[d] = 0
		}
		m[e.ID] = days
	}
	return m
}

// AggregateWeeklyDurations sums resolved durations into an entity×day
// matrix across every occurrence of a weekday in the record set,
// regardless of concrete dates. Only active records of the matching
// kind count; records with an unknown entity or a non-canonical day
// contribute to no cell.
// PRE: entries all share the same Kind
// POST: sum over days for an entity equals the sum of Minutes() over
// its valid active records
func AggregateWeeklyDurations(entries []roster.Entry, records []schedule.Record, kind string) DurationMatrix {
	m := newDurationMatrix(entries)
	for i := range records {
		r := &records[i]
		if !r.IsActive() || r.EntityType != kind {
			continue
		}
		days, known := m[r.EntityID]
		if !known || !week.IsValidDay(r.Day) {
			continue
		}
		days[r.Day] += r.Minutes()
	}
	return m
}

// AggregateDailyDurations sums durations for a single selected date.
// A dated record counts only when its date equals selectedDate; a
// recurring slot (no date) counts by day-name match alone, on the
// assumption that weekly slots also occur on the selected date. When a
// recurring slot and a one-off dated slot coexist on the same day both
// are summed.
// PRE: selectedDate is in YYYY-MM-DD format
// POST: only the selected date's weekday column can be non-zero; an
// unparseable date yields the all-zero matrix
func AggregateDailyDurations(entries []roster.Entry, records []schedule.Record, kind, selectedDate string) DurationMatrix {
	m := newDurationMatrix(entries)
	date, err := time.Parse("2006-01-02", selectedDate)
	if err != nil {
		return m
	}
	dayName := week.DayName(date)

	for i := range records {
		r := &records[i]
		if !r.IsActive() || r.EntityType != kind {
			continue
		}
		days, known := m[r.EntityID]
		if !known || !r.OccursOn(selectedDate, dayName) {
			continue
		}
		days[r.Day] += r.Minutes()
	}
	return m
}

// indexActiveByEntity groups active records of one kind by entity id,
// so the matrix and ranking builders avoid rescanning the full record
// set per roster entity. Purely an access-path optimization; the
// aggregation semantics are unchanged.
func indexActiveByEntity(records []schedule.Record, kind string) map[int][]*schedule.Record {
	idx := make(map[int][]*schedule.Record)
	for i := range records {
		r := &records[i]
		if r.IsActive() && r.EntityType == kind {
			idx[r.EntityID] = append(idx[r.EntityID], r)
		}
	}
	return idx
}

// SafePercent returns part/whole as a percentage, guarding the zero
// denominator by returning 0 instead of NaN.
func SafePercent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
