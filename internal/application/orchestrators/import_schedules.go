package orchestrators

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

// ImportSchedulesInput carries the raw JSON payload and import options.
// PRE: Reader is a JSON array of schedule objects; exported shapes vary
// by source system, so field names are normalized per object.
// POST: Returns aggregate counts and per-row errors; writes are skipped
// when DryRun=true.
type ImportSchedulesInput struct {
	Reader io.Reader
	DryRun bool
}

// ImportSchedulesResult holds aggregate counts and per-row errors from
// an import run.
type ImportSchedulesResult struct {
	Total    int
	Imported int
	Errors   []ImportSchedulesRowError
	DryRun   bool
}

// ImportSchedulesRowError describes a validation error for a single
// payload object.
type ImportSchedulesRowError struct {
	Row     int
	Message string
}

// ImportSchedulesDeps holds external dependencies for the import
// orchestrator.
type ImportSchedulesDeps struct {
	ScheduleStore importScheduleStore
	GenerateID    func() string
}

type importScheduleStore interface {
	Save(ctx context.Context, r schedule.Record) error
}

// ExecuteImportSchedules decodes a JSON array of schedule objects and
// saves the normalized records. Source exports disagree on field names
// (trainer_id vs id, duration vs start/end times, nested entity
// objects), so each object is mapped onto the canonical record shape
// before validation.
// PRE: Input.Reader contains a JSON array; deps.GenerateID is non-nil
// POST: Valid records are saved unless DryRun; invalid objects are
//
//	reported per row and never written; audit log is emitted
func ExecuteImportSchedules(ctx context.Context, input ImportSchedulesInput, deps ImportSchedulesDeps) (ImportSchedulesResult, error) {
	var rows []map[string]any
	if err := json.NewDecoder(input.Reader).Decode(&rows); err != nil {
		return ImportSchedulesResult{}, &ImportSchedulesValidationError{Message: "payload is not a JSON array: " + err.Error()}
	}

	result := ImportSchedulesResult{DryRun: input.DryRun, Total: len(rows)}

	for i, raw := range rows {
		rowNum := i + 1

		rec, err := normalizeRawSchedule(raw)
		if err != nil {
			result.Errors = append(result.Errors, ImportSchedulesRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		if rec.ID == "" {
			rec.ID = deps.GenerateID()
		}

		if input.DryRun {
			result.Imported++
			continue
		}

		if err := deps.ScheduleStore.Save(ctx, rec); err != nil {
			slog.Error("schedules_import_save_failed", "row", rowNum, "record_id", rec.ID, "err", err)
			result.Errors = append(result.Errors, ImportSchedulesRowError{Row: rowNum, Message: "save failed (see server log)"})
			continue
		}
		result.Imported++
	}

	slog.Info("schedules_import",
		"dry_run", input.DryRun,
		"total", result.Total,
		"imported", result.Imported,
		"errors", len(result.Errors),
	)

	return result, nil
}

// normalizeRawSchedule maps one raw export object onto the canonical
// record shape. Entity references are tried in order of specificity:
// a typed id key (trainer_id, class_id), a nested entity object, then
// a bare id plus an entity_type key.
func normalizeRawSchedule(raw map[string]any) (schedule.Record, error) {
	rec := schedule.Record{
		ID:     strField(raw, "schedule_id", "record_id"),
		Status: strings.ToLower(strField(raw, "status")),
	}
	if rec.Status == "" {
		rec.Status = schedule.StatusActive
	}

	if id, ok := intField(raw, "trainer_id"); ok {
		rec.EntityID = id
		rec.EntityType = schedule.EntityTrainer
	} else if id, ok := intField(raw, "class_id"); ok {
		rec.EntityID = id
		rec.EntityType = schedule.EntityClass
	} else if id, ok := nestedID(raw, "trainer"); ok {
		rec.EntityID = id
		rec.EntityType = schedule.EntityTrainer
	} else if id, ok := nestedID(raw, "class"); ok {
		rec.EntityID = id
		rec.EntityType = schedule.EntityClass
	} else if id, ok := intField(raw, "id", "entity_id"); ok {
		rec.EntityID = id
		rec.EntityType = strings.ToLower(strField(raw, "entity_type", "type"))
	}

	if rec.EntityID <= 0 {
		return schedule.Record{}, &ImportSchedulesValidationError{Message: "no entity reference (expected trainer_id, class_id, or id)"}
	}
	if rec.EntityType != schedule.EntityTrainer && rec.EntityType != schedule.EntityClass {
		return schedule.Record{}, &ImportSchedulesValidationError{Message: "unknown entity type: " + rec.EntityType}
	}

	day, err := canonicalDay(strField(raw, "day_of_week", "day"))
	if err != nil {
		return schedule.Record{}, err
	}
	rec.Day = day

	rec.Date = strField(raw, "date", "class_date", "schedule_date")
	rec.StartTime = strField(raw, "start_time")
	rec.EndTime = strField(raw, "end_time")
	if mins, ok := intField(raw, "duration_minutes", "duration"); ok {
		rec.DurationMinutes = mins
	}

	if err := rec.Validate(); err != nil {
		return schedule.Record{}, err
	}
	return rec, nil
}

// canonicalDay title-cases a raw day value and checks it against the
// calendar.
func canonicalDay(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ImportSchedulesValidationError{Message: "day is required"}
	}
	day := strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
	if !week.IsValidDay(day) {
		return "", &ImportSchedulesValidationError{Message: "unknown day: " + raw}
	}
	return day, nil
}

// strField returns the first non-empty string value among the keys.
func strField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// intField returns the first numeric value among the keys. JSON numbers
// decode as float64; string-typed ids from older exports are parsed too.
func intField(raw map[string]any, keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return int(v), true
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// nestedID extracts an id from a nested entity object like
// {"trainer": {"id": 5}}.
func nestedID(raw map[string]any, key string) (int, bool) {
	obj, ok := raw[key].(map[string]any)
	if !ok {
		return 0, false
	}
	return intField(obj, "id", key+"_id")
}

// ImportSchedulesValidationError is returned when the payload structure
// or a row's content is invalid.
type ImportSchedulesValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ImportSchedulesValidationError) Error() string {
	return e.Message
}
