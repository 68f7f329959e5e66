package task

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage for tasks.
type Repository interface {
	Save(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	FindAll(ctx context.Context) ([]*Task, error)
	// FindPending returns incomplete tasks in creation order.
	FindPending(ctx context.Context) ([]*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
