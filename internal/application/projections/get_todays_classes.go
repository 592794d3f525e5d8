package projections

import (
	"context"
	"sort"
	"time"

	domainClass "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// GetTodaysClassesDeps holds dependencies for the projection.
type GetTodaysClassesDeps struct {
	ClassStore    ClassStore
	ScheduleStore ScheduleStore
}

// TodaysClassResult represents a single class session resolved for the
// selected date.
type TodaysClassResult struct {
	RecordID  string
	ClassID   int
	ClassName string
	Category  string
	Day       string
	StartTime string
	EndTime   string
	Minutes   int
}

// QueryGetTodaysClasses resolves the class sessions occurring on the
// given date. Recurring slots match by weekday; dated slots must match
// the exact date. Records referencing a class missing from the roster
// are skipped.
// PRE: deps stores are non-nil
// POST: Returns sessions sorted by start time; only active records appear
func QueryGetTodaysClasses(ctx context.Context, now time.Time, deps GetTodaysClassesDeps) ([]TodaysClassResult, error) {
	date := now.Format("2006-01-02")
	dayName := week.DayName(now)

	classes, err := deps.ClassStore.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domainClass.Class, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}

	records, err := deps.ScheduleStore.List(ctx)
	if err != nil {
		return nil, err
	}

	var results []TodaysClassResult
	for i := range records {
		r := &records[i]
		if !r.IsActive() || r.EntityType != schedule.EntityClass || !r.OccursOn(date, dayName) {
			continue
		}
		c, known := byID[r.EntityID]
		if !known {
			continue // unattributable record
		}
		results = append(results, TodaysClassResult{
			RecordID:  r.ID,
			ClassID:   c.ID,
			ClassName: c.DisplayName(),
			Category:  c.Category,
			Day:       r.Day,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Minutes:   r.Minutes(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartTime < results[j].StartTime
	})
	return results, nil
}
