package projections

import (
	"context"
	"testing"
	"time"

	domainClass "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// TestQueryGetTodaysClasses tests date resolution, recurring/dated
// matching, and start-time ordering.
func TestQueryGetTodaysClasses(t *testing.T) {
	// 2026-08-24 is a Monday.
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)

	deps := GetTodaysClassesDeps{
		ClassStore: &mockClassStore{classes: []domainClass.Class{
			{ID: 1, Name: "Morning Yoga", Category: "Yoga", Active: true},
			{ID: 2, Name: "Evening Spin", Category: "Cardio", Active: true},
		}},
		ScheduleStore: &mockScheduleStore{records: []schedule.Record{
			{ID: "late", EntityID: 2, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "18:00", EndTime: "19:00", Status: schedule.StatusActive},
			{ID: "early", EntityID: 1, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "07:00", EndTime: "08:00", Status: schedule.StatusActive},
			{ID: "dated-today", EntityID: 1, EntityType: schedule.EntityClass, Day: week.Monday, Date: "2026-08-24", StartTime: "12:00", EndTime: "13:00", Status: schedule.StatusActive},
			{ID: "dated-last-week", EntityID: 1, EntityType: schedule.EntityClass, Day: week.Monday, Date: "2026-08-17", StartTime: "12:00", EndTime: "13:00", Status: schedule.StatusActive},
			{ID: "tuesday", EntityID: 1, EntityType: schedule.EntityClass, Day: week.Tuesday, StartTime: "07:00", EndTime: "08:00", Status: schedule.StatusActive},
			{ID: "cancelled", EntityID: 2, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "10:00", EndTime: "11:00", Status: schedule.StatusCancelled},
			{ID: "orphan", EntityID: 99, EntityType: schedule.EntityClass, Day: week.Monday, StartTime: "10:00", EndTime: "11:00", Status: schedule.StatusActive},
		}},
	}

	results, err := QueryGetTodaysClasses(context.Background(), now, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(results), results)
	}

	// Ordered by start time.
	if results[0].RecordID != "early" || results[1].RecordID != "dated-today" || results[2].RecordID != "late" {
		t.Errorf("order = [%s %s %s]", results[0].RecordID, results[1].RecordID, results[2].RecordID)
	}
	if results[0].ClassName != "Morning Yoga" || results[0].Minutes != 60 {
		t.Errorf("first session = %+v", results[0])
	}
}
