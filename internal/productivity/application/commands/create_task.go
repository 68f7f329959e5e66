package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title           string
	Description     string
	Priority        string
	EstimateMinutes int
	Deadline        *time.Time
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID uuid.UUID
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *CreateTaskHandler {
	return &CreateTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	t, err := task.NewTask(cmd.Title, cmd.EstimateMinutes)
	if err != nil {
		return nil, err
	}

	if cmd.Description != "" {
		t.SetDescription(cmd.Description)
	}

	if cmd.Priority != "" {
		priority, err := value_objects.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		if err := t.SetPriority(priority); err != nil {
			return nil, err
		}
	}

	if cmd.Deadline != nil {
		t.SetDeadline(cmd.Deadline)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	// Event delivery is best-effort; a lost event never fails the write.
	_ = eventbus.PublishEvents(ctx, h.publisher, t.DomainEvents())
	t.ClearDomainEvents()

	return &CreateTaskResult{TaskID: t.ID()}, nil
}
