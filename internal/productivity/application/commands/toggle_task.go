package commands

import (
	"context"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// ToggleTaskCommand flips the completion flag of a task.
type ToggleTaskCommand struct {
	TaskID uuid.UUID
}

// ToggleTaskResult reports the resulting completion state.
type ToggleTaskResult struct {
	Completed bool
}

// ToggleTaskHandler handles the ToggleTaskCommand.
type ToggleTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewToggleTaskHandler creates a new ToggleTaskHandler.
func NewToggleTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *ToggleTaskHandler {
	return &ToggleTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// Handle executes the ToggleTaskCommand.
func (h *ToggleTaskHandler) Handle(ctx context.Context, cmd ToggleTaskCommand) (*ToggleTaskResult, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	t.ToggleComplete()

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	_ = eventbus.PublishEvents(ctx, h.publisher, t.DomainEvents())
	t.ClearDomainEvents()

	return &ToggleTaskResult{Completed: t.IsCompleted()}, nil
}
