package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ListTasksQuery filters the task list.
type ListTasksQuery struct {
	// PendingOnly restricts the result to incomplete tasks.
	PendingOnly bool
}

// TaskView is a read-model projection of a task.
type TaskView struct {
	ID              uuid.UUID
	Title           string
	Description     string
	EstimateMinutes int
	Deadline        *time.Time
	Priority        string
	Completed       bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskView, error) {
	var (
		tasks []*task.Task
		err   error
	)
	if query.PendingOnly {
		tasks, err = h.taskRepo.FindPending(ctx)
	} else {
		tasks, err = h.taskRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, ToView(t))
	}
	return views, nil
}

// ToView projects a task aggregate into its read model.
func ToView(t *task.Task) TaskView {
	return TaskView{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		EstimateMinutes: t.EstimateMinutes(),
		Deadline:        t.Deadline(),
		Priority:        t.Priority().String(),
		Completed:       t.IsCompleted(),
		CompletedAt:     t.CompletedAt(),
		CreatedAt:       t.CreatedAt(),
	}
}
