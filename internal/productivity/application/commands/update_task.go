package commands

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// UpdateTaskCommand contains the fields to change on an existing task.
// Nil pointers leave the corresponding field untouched.
type UpdateTaskCommand struct {
	TaskID          uuid.UUID
	Title           *string
	Description     *string
	Priority        *string
	EstimateMinutes *int
	Deadline        *time.Time
	ClearDeadline   bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *UpdateTaskHandler {
	return &UpdateTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	var fields []string

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
		fields = append(fields, "title")
	}

	if cmd.Description != nil {
		t.SetDescription(*cmd.Description)
		fields = append(fields, "description")
	}

	if cmd.Priority != nil {
		priority, err := value_objects.ParsePriority(*cmd.Priority)
		if err != nil {
			return err
		}
		if err := t.SetPriority(priority); err != nil {
			return err
		}
		fields = append(fields, "priority")
	}

	if cmd.EstimateMinutes != nil {
		if err := t.SetEstimate(*cmd.EstimateMinutes); err != nil {
			return err
		}
		fields = append(fields, "estimate_minutes")
	}

	if cmd.Deadline != nil {
		t.SetDeadline(cmd.Deadline)
		fields = append(fields, "deadline")
	} else if cmd.ClearDeadline {
		t.SetDeadline(nil)
		fields = append(fields, "deadline")
	}

	if len(fields) == 0 {
		return nil
	}

	t.AddDomainEvent(task.NewTaskUpdated(t.ID(), fields))

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return err
	}

	_ = eventbus.PublishEvents(ctx, h.publisher, t.DomainEvents())
	t.ClearDomainEvents()

	return nil
}
