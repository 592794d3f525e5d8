package schedule_test

import (
	"testing"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// TestRecord_Validate tests validation of Record.
func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rec     schedule.Record
		wantErr bool
	}{
		{
			name:    "valid trainer record",
			rec:     schedule.Record{ID: "1", EntityID: 3, EntityType: schedule.EntityTrainer, Day: week.Monday, Status: schedule.StatusActive},
			wantErr: false,
		},
		{
			name:    "valid cancelled class record",
			rec:     schedule.Record{ID: "2", EntityID: 7, EntityType: schedule.EntityClass, Day: week.Saturday, Status: schedule.StatusCancelled},
			wantErr: false,
		},
		{
			name:    "bad entity type",
			rec:     schedule.Record{ID: "3", EntityID: 3, EntityType: "room", Day: week.Monday, Status: schedule.StatusActive},
			wantErr: true,
		},
		{
			name:    "zero entity id",
			rec:     schedule.Record{ID: "4", EntityID: 0, EntityType: schedule.EntityTrainer, Day: week.Monday, Status: schedule.StatusActive},
			wantErr: true,
		},
		{
			name:    "lowercase day rejected",
			rec:     schedule.Record{ID: "5", EntityID: 3, EntityType: schedule.EntityTrainer, Day: "monday", Status: schedule.StatusActive},
			wantErr: true,
		},
		{
			name:    "empty day",
			rec:     schedule.Record{ID: "6", EntityID: 3, EntityType: schedule.EntityTrainer, Day: "", Status: schedule.StatusActive},
			wantErr: true,
		},
		{
			name:    "bad status",
			rec:     schedule.Record{ID: "7", EntityID: 3, EntityType: schedule.EntityTrainer, Day: week.Monday, Status: "paused"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Record.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestRecord_Minutes tests duration resolution precedence.
func TestRecord_Minutes(t *testing.T) {
	tests := []struct {
		name string
		rec  schedule.Record
		want int
	}{
		{
			name: "explicit duration wins over times",
			rec:  schedule.Record{DurationMinutes: 45, StartTime: "10:00", EndTime: "12:00"},
			want: 45,
		},
		{
			name: "derived from times",
			rec:  schedule.Record{StartTime: "18:00", EndTime: "19:30"},
			want: 90,
		},
		{
			name: "overnight slot crosses midnight",
			rec:  schedule.Record{StartTime: "23:00", EndTime: "00:30"},
			want: 90,
		},
		{
			name: "no duration and no times",
			rec:  schedule.Record{},
			want: 0,
		},
		{
			name: "malformed start time",
			rec:  schedule.Record{StartTime: "6pm", EndTime: "19:00"},
			want: 0,
		},
		{
			name: "missing end time",
			rec:  schedule.Record{StartTime: "18:00"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Minutes(); got != tt.want {
				t.Errorf("Record.Minutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestRecord_OccursOn tests day and date matching for daily buckets.
func TestRecord_OccursOn(t *testing.T) {
	tests := []struct {
		name string
		rec  schedule.Record
		date string
		day  string
		want bool
	}{
		{
			name: "recurring slot matches by day alone",
			rec:  schedule.Record{Day: week.Monday},
			date: "2026-08-24",
			day:  week.Monday,
			want: true,
		},
		{
			name: "dated slot matches its exact date",
			rec:  schedule.Record{Day: week.Monday, Date: "2026-08-24"},
			date: "2026-08-24",
			day:  week.Monday,
			want: true,
		},
		{
			name: "dated slot rejects a different date",
			rec:  schedule.Record{Day: week.Monday, Date: "2026-08-17"},
			date: "2026-08-24",
			day:  week.Monday,
			want: false,
		},
		{
			name: "wrong day never matches",
			rec:  schedule.Record{Day: week.Tuesday},
			date: "2026-08-24",
			day:  week.Monday,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.OccursOn(tt.date, tt.day); got != tt.want {
				t.Errorf("OccursOn(%q, %q) = %v, want %v", tt.date, tt.day, got, tt.want)
			}
		})
	}
}
