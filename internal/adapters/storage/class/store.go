package class

import (
	"context"

	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/class"
)

// Store persists Class state.
type Store interface {
	GetByID(ctx context.Context, id int) (domain.Class, error)
	Save(ctx context.Context, value domain.Class) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]domain.Class, error)
	ListByTrainerID(ctx context.Context, trainerID int) ([]domain.Class, error)
}
