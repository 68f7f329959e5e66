package commands

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// DeleteTaskCommand removes a task permanently.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// Handle executes the DeleteTaskCommand.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	if err := h.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		return err
	}

	h.publishDeleted(ctx, cmd.TaskID)
	return nil
}

func (h *DeleteTaskHandler) publishDeleted(ctx context.Context, id uuid.UUID) {
	event := task.NewTaskDeleted(id)
	env, err := eventbus.NewEnvelope(event)
	if err != nil {
		return
	}
	body, err := json.Marshal(env)
	if err != nil {
		return
	}
	_ = h.publisher.Publish(ctx, env.RoutingKey, body)
}
