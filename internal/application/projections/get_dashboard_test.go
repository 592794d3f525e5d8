package projections

import (
	"context"
	"testing"
	"time"

	domainClass "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	domainTrainer "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// TestQueryGetDashboard tests counts, today's sessions, ranking, and
// the occupancy percentage.
func TestQueryGetDashboard(t *testing.T) {
	// 2026-08-24 is a Monday.
	now := time.Date(2026, 8, 24, 8, 0, 0, 0, time.Local)

	deps := GetDashboardDeps{
		TrainerStore: &mockTrainerStore{trainers: []domainTrainer.Trainer{
			{ID: 1, FirstName: "Elif", Active: true},
			{ID: 2, FirstName: "Murat", Active: false},
		}},
		ClassStore: &mockClassStore{classes: []domainClass.Class{
			{ID: 10, Name: "Yoga", Active: true},
			{ID: 20, Name: "Spin", Active: true},
			{ID: 30, Name: "Retired", Active: false},
			{ID: 40, Name: "Boxing", Active: true},
		}},
		ScheduleStore: &mockScheduleStore{records: []schedule.Record{
			{ID: "s1", EntityID: 10, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "07:00", EndTime: "08:00", Status: schedule.StatusActive},
			{ID: "s2", EntityID: 10, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "12:00", EndTime: "13:00", Status: schedule.StatusActive},
			{ID: "s3", EntityID: 20, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "18:00", EndTime: "19:00", Status: schedule.StatusActive},
			{ID: "t1", EntityID: 1, EntityType: schedule.EntityTrainer, Day: week.Monday, Status: schedule.StatusActive},
			{ID: "t2", EntityID: 1, EntityType: schedule.EntityTrainer, Day: week.Wednesday, Status: schedule.StatusActive},
		}},
	}

	res, err := QueryGetDashboard(context.Background(), GetDashboardQuery{TopN: 3, Now: now}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.Date != "2026-08-24" {
		t.Errorf("Date = %q", res.Date)
	}
	if res.TrainerCount != 2 || res.ActiveTrainerCount != 1 {
		t.Errorf("trainer counts = %d/%d, want 2/1", res.TrainerCount, res.ActiveTrainerCount)
	}
	if res.ClassCount != 4 || res.ActiveClassCount != 3 {
		t.Errorf("class counts = %d/%d, want 4/3", res.ClassCount, res.ActiveClassCount)
	}
	if len(res.TodaysClasses) != 3 {
		t.Errorf("todays classes = %d, want 3", len(res.TodaysClasses))
	}
	if len(res.TopTrainers) != 1 || res.TopTrainers[0].EntityID != 1 || res.TopTrainers[0].WeeklyCount != 2 {
		t.Errorf("top trainers = %+v", res.TopTrainers)
	}
	// Two of the four classes have a session today.
	if res.TodayOccupancyPercent != 50 {
		t.Errorf("occupancy = %v, want 50", res.TodayOccupancyPercent)
	}
}

// TestQueryGetDashboard_EmptyRosters verifies zero-denominator guarding.
func TestQueryGetDashboard_EmptyRosters(t *testing.T) {
	deps := GetDashboardDeps{
		TrainerStore:  &mockTrainerStore{},
		ClassStore:    &mockClassStore{},
		ScheduleStore: &mockScheduleStore{},
	}

	res, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Now: time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TodayOccupancyPercent != 0 {
		t.Errorf("occupancy = %v, want 0 for empty roster", res.TodayOccupancyPercent)
	}
}
