package trainer

import (
	"context"

	domain "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
)

// Store persists Trainer state.
type Store interface {
	GetByID(ctx context.Context, id int) (domain.Trainer, error)
	Save(ctx context.Context, value domain.Trainer) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]domain.Trainer, error)
}
