package projections

import (
	"context"

	domainClass "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
	domainSchedule "github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	domainTrainer "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
)

// TrainerStore interface for trainer roster queries.
type TrainerStore interface {
	List(ctx context.Context) ([]domainTrainer.Trainer, error)
}

// ClassStore interface for class roster queries.
type ClassStore interface {
	List(ctx context.Context) ([]domainClass.Class, error)
}

// ScheduleStore interface for schedule record queries.
type ScheduleStore interface {
	List(ctx context.Context) ([]domainSchedule.Record, error)
}
