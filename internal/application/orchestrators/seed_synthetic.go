package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	domainClass "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	domainTrainer "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"

	"github.com/google/uuid"
)

// SyntheticSeedDeps holds the stores needed for synthetic data seeding.
type SyntheticSeedDeps struct {
	TrainerStore  seedTrainerStore
	ClassStore    seedClassStore
	ScheduleStore seedScheduleStore
}

type seedTrainerStore interface {
	Save(ctx context.Context, t domainTrainer.Trainer) error
	List(ctx context.Context) ([]domainTrainer.Trainer, error)
}
type seedClassStore interface {
	Save(ctx context.Context, c domainClass.Class) error
}
type seedScheduleStore interface {
	Save(ctx context.Context, r schedule.Record) error
}

// ExecuteSeedSynthetic populates an empty database with a small roster
// of trainers, classes, and a week of schedule records so the dashboard
// has something to show in development.
// PRE: deps stores are non-nil
// POST: No-op when trainers already exist; otherwise the roster and
//
//	schedule are written and an audit log is emitted
func ExecuteSeedSynthetic(ctx context.Context, deps SyntheticSeedDeps) error {
	existing, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("seed_synthetic_skipped", "trainers", len(existing))
		return nil
	}

	trainers := []domainTrainer.Trainer{
		{ID: 1, FirstName: "Elif", LastName: "Demir", Email: "elif@fitness.local", Specialization: "Yoga", Active: true},
		{ID: 2, FirstName: "Murat", LastName: "Kaya", Email: "murat@fitness.local", Specialization: "Strength", Active: true},
		{ID: 3, FirstName: "Zeynep", LastName: "Aksoy", Email: "zeynep@fitness.local", Specialization: "Pilates", Active: true},
		{ID: 4, FirstName: "Can", LastName: "Yildiz", Email: "can@fitness.local", Specialization: "Boxing", Active: false},
	}
	for _, t := range trainers {
		if err := deps.TrainerStore.Save(ctx, t); err != nil {
			return fmt.Errorf("seed trainer %d: %w", t.ID, err)
		}
	}

	classes := []domainClass.Class{
		{ID: 1, Name: "Morning Yoga", Category: "Yoga", TrainerID: 1, Capacity: 20, Active: true},
		{ID: 2, Name: "Power Lifting", Category: "Strength", TrainerID: 2, Capacity: 12, Active: true},
		{ID: 3, Name: "Core Pilates", Category: "Pilates", TrainerID: 3, Capacity: 16, Active: true},
		{ID: 4, Name: "Evening Spin", Category: "Cardio", TrainerID: 2, Capacity: 24, Active: true},
		{ID: 5, Name: "Sparring Basics", Category: "Boxing", TrainerID: 4, Capacity: 10, Active: false},
	}
	for _, c := range classes {
		if err := deps.ClassStore.Save(ctx, c); err != nil {
			return fmt.Errorf("seed class %d: %w", c.ID, err)
		}
	}

	type slot struct {
		entityID   int
		entityType string
		day        string
		start, end string
	}
	slots := []slot{
		{1, schedule.EntityClass, week.Monday, "07:00", "08:00"},
		{1, schedule.EntityClass, week.Wednesday, "07:00", "08:00"},
		{2, schedule.EntityClass, week.Tuesday, "18:00", "19:30"},
		{2, schedule.EntityClass, week.Thursday, "18:00", "19:30"},
		{3, schedule.EntityClass, week.Monday, "12:00", "13:00"},
		{3, schedule.EntityClass, week.Friday, "12:00", "13:00"},
		{4, schedule.EntityClass, week.Friday, "19:00", "20:00"},
		{4, schedule.EntityClass, week.Saturday, "10:00", "11:00"},
		{1, schedule.EntityTrainer, week.Monday, "07:00", "08:00"},
		{1, schedule.EntityTrainer, week.Wednesday, "07:00", "08:00"},
		{2, schedule.EntityTrainer, week.Tuesday, "18:00", "19:30"},
		{2, schedule.EntityTrainer, week.Thursday, "18:00", "19:30"},
		{2, schedule.EntityTrainer, week.Friday, "19:00", "20:00"},
		{3, schedule.EntityTrainer, week.Monday, "12:00", "13:00"},
		{3, schedule.EntityTrainer, week.Friday, "12:00", "13:00"},
	}
	for _, s := range slots {
		rec := schedule.Record{
			ID:         uuid.NewString(),
			EntityID:   s.entityID,
			EntityType: s.entityType,
			Day:        s.day,
			StartTime:  s.start,
			EndTime:    s.end,
			Status:     schedule.StatusActive,
		}
		if err := deps.ScheduleStore.Save(ctx, rec); err != nil {
			return fmt.Errorf("seed schedule %s: %w", rec.ID, err)
		}
	}

	slog.Info("seed_synthetic_done",
		"trainers", len(trainers),
		"classes", len(classes),
		"schedules", len(slots),
	)
	return nil
}
