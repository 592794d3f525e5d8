package schedule

import (
	"context"

	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
)

// Store persists schedule Record state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Record, error)
	Save(ctx context.Context, value domain.Record) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Record, error)
	ListByDay(ctx context.Context, day string) ([]domain.Record, error)
	ListByEntity(ctx context.Context, entityType string, entityID int) ([]domain.Record, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Record, error)
}
