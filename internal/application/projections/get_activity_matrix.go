package projections

import (
	"context"
	"fmt"
	"time"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// Aggregation modes for the activity matrix.
const (
	ModeWeekly = "weekly"
	ModeDaily  = "daily"
)

// ActivitySlot is one day cell of an entity's 7-slot activity vector.
type ActivitySlot struct {
	Day     string
	Minutes int
	Active  bool
}

// ActivityRow carries one roster entity's per-day activity. Rows are
// rebuilt in full on every invocation, never patched in place.
type ActivityRow struct {
	EntityID    int
	DisplayName string
	Activities  [7]ActivitySlot // canonical Monday-first order
}

// GetActivityMatrixQuery carries input for the activity matrix projection.
type GetActivityMatrixQuery struct {
	Kind string    // roster.KindTrainer or roster.KindClass
	Mode string    // ModeWeekly or ModeDaily
	Date string    // selected date (YYYY-MM-DD), daily mode only
	Now  time.Time // optional: if zero, time.Now() is used; seeds Date when empty
}

// GetActivityMatrixDeps holds dependencies for the activity matrix projection.
type GetActivityMatrixDeps struct {
	TrainerStore  TrainerStore
	ClassStore    ClassStore
	ScheduleStore ScheduleStore
}

// GetActivityMatrixResult carries the output of the activity matrix projection.
type GetActivityMatrixResult struct {
	Mode string
	Date string // resolved selected date, daily mode only
	Days []string
	Rows []ActivityRow
}

// QueryGetActivityMatrix builds per-entity 7-slot activity rows for the
// weekly/daily heatmap views.
// PRE: query.Kind is a roster kind; query.Mode is weekly or daily
// POST: one row per roster entity in roster order, including entities
// with no schedule activity
func QueryGetActivityMatrix(ctx context.Context, query GetActivityMatrixQuery, deps GetActivityMatrixDeps) (GetActivityMatrixResult, error) {
	if query.Mode != ModeWeekly && query.Mode != ModeDaily {
		return GetActivityMatrixResult{}, fmt.Errorf("mode must be weekly or daily")
	}

	entries, err := loadRoster(ctx, query.Kind, deps.TrainerStore, deps.ClassStore)
	if err != nil {
		return GetActivityMatrixResult{}, err
	}

	records, err := deps.ScheduleStore.List(ctx)
	if err != nil {
		return GetActivityMatrixResult{}, err
	}

	date := query.Date
	if query.Mode == ModeDaily && date == "" {
		now := query.Now
		if now.IsZero() {
			now = time.Now()
		}
		date = now.Format("2006-01-02")
	}

	return GetActivityMatrixResult{
		Mode: query.Mode,
		Date: date,
		Days: week.Days,
		Rows: BuildActivityRows(entries, records, query.Kind, query.Mode, date),
	}, nil
}

// BuildActivityRows is the pure core of the matrix projection. Minutes
// come from the weekly or daily duration aggregate; the Active flag is
// an existence check over active records for that (entity, day), unless
// the entity carries an explicit weekly-recurrence override, which is
// taken as ground truth instead of scanning schedules.
// PRE: entries share query kind; mode is weekly or daily
// POST: returns one row per entry, in entry order
func BuildActivityRows(entries []roster.Entry, records []schedule.Record, kind, mode, date string) []ActivityRow {
	var matrix DurationMatrix
	if mode == ModeDaily {
		matrix = AggregateDailyDurations(entries, records, kind, date)
	} else {
		matrix = AggregateWeeklyDurations(entries, records, kind)
	}

	byEntity := indexActiveByEntity(records, kind)

	rows := make([]ActivityRow, 0, len(entries))
	for _, e := range entries {
		row := ActivityRow{EntityID: e.ID, DisplayName: e.DisplayName}
		for i, day := range week.Days {
			row.Activities[i] = ActivitySlot{
				Day:     day,
				Minutes: matrix[e.ID][day],
				Active:  slotActive(e, byEntity[e.ID], day),
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// slotActive resolves a slot's presence flag. A roster-level recurrence
// override wins; otherwise presence falls back to schedule-derived
// existence of an active record on that day.
func slotActive(e roster.Entry, active []*schedule.Record, day string) bool {
	if e.WeeklyDays != nil {
		for _, d := range e.WeeklyDays {
			if d == day {
				return true
			}
		}
		return false
	}
	for _, r := range active {
		if r.Day == day {
			return true
		}
	}
	return false
}

// loadRoster fetches and converts the roster for one entity kind.
func loadRoster(ctx context.Context, kind string, trainers TrainerStore, classes ClassStore) ([]roster.Entry, error) {
	switch kind {
	case roster.KindTrainer:
		list, err := trainers.List(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]roster.Entry, 0, len(list))
		for i := range list {
			entries = append(entries, list[i].RosterEntry())
		}
		return entries, nil
	case roster.KindClass:
		list, err := classes.List(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]roster.Entry, 0, len(list))
		for i := range list {
			entries = append(entries, list[i].RosterEntry())
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unknown roster kind %q", kind)
	}
}
