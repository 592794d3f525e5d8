package projections

import (
	"context"
	"time"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
)

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	TopN int       // ranking size, defaults to DefaultTopN
	Now  time.Time // optional: if zero, time.Now() is used
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	TrainerStore  TrainerStore
	ClassStore    ClassStore
	ScheduleStore ScheduleStore
}

// DashboardResult carries the aggregated admin dashboard data.
type DashboardResult struct {
	Date string // the dashboard's reference date (YYYY-MM-DD)

	TodaysClasses []TodaysClassResult
	TopTrainers   []RankedEntry

	TrainerCount       int
	ActiveTrainerCount int
	ClassCount         int
	ActiveClassCount   int

	// Share of roster classes with at least one session today.
	TodayOccupancyPercent float64
}

// QueryGetDashboard aggregates the admin landing-page data from the
// roster and schedule snapshots. Sub-projections that fail leave their
// section empty rather than failing the whole dashboard.
// PRE: deps stores are non-nil
// POST: counts and percentages are zero-guarded, never NaN
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) (DashboardResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	result := DashboardResult{Date: now.Format("2006-01-02")}

	classes, err := deps.ClassStore.List(ctx)
	if err == nil {
		result.ClassCount = len(classes)
		for i := range classes {
			if classes[i].Active {
				result.ActiveClassCount++
			}
		}
	}

	trainers, err := deps.TrainerStore.List(ctx)
	if err == nil {
		result.TrainerCount = len(trainers)
		for i := range trainers {
			if trainers[i].Active {
				result.ActiveTrainerCount++
			}
		}
	}

	todays, err := QueryGetTodaysClasses(ctx, now, GetTodaysClassesDeps{
		ClassStore:    deps.ClassStore,
		ScheduleStore: deps.ScheduleStore,
	})
	if err == nil {
		result.TodaysClasses = todays
	}

	ranked, err := QueryGetTopTrainers(ctx, GetTopTrainersQuery{N: query.TopN}, GetTopTrainersDeps{
		TrainerStore:  deps.TrainerStore,
		ScheduleStore: deps.ScheduleStore,
	})
	if err == nil {
		result.TopTrainers = ranked
	}

	busy := make(map[int]bool)
	for _, tc := range result.TodaysClasses {
		busy[tc.ClassID] = true
	}
	result.TodayOccupancyPercent = SafePercent(len(busy), result.ClassCount)

	return result, nil
}

// RosterEntries converts a fetched trainer or class roster into
// canonical entries for the filter and pagination layers. Kind selects
// which store is consulted.
// PRE: kind is a roster kind constant
// POST: entries preserve the store's declared order
func RosterEntries(ctx context.Context, kind string, deps GetDashboardDeps) ([]roster.Entry, error) {
	return loadRoster(ctx, kind, deps.TrainerStore, deps.ClassStore)
}
