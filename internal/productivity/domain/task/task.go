package task

import (
	"errors"
	"strings"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrInvalidEstimate = errors.New("task estimate must be a positive number of minutes")
)

// Task represents a unit of work to be done.
type Task struct {
	domain.BaseAggregateRoot
	title           string
	description     string
	estimateMinutes int
	deadline        *time.Time
	priority        value_objects.Priority
	completed       bool
	completedAt     *time.Time
}

// NewTask creates a new pending task.
func NewTask(title string, estimateMinutes int) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if estimateMinutes <= 0 {
		return nil, ErrInvalidEstimate
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		title:             title,
		estimateMinutes:   estimateMinutes,
		priority:          value_objects.PriorityMedium,
	}

	t.AddDomainEvent(NewTaskCreated(t.ID(), t.title, t.priority.String()))

	return t, nil
}

// Getters

func (t *Task) Title() string                    { return t.title }
func (t *Task) Description() string              { return t.description }
func (t *Task) EstimateMinutes() int             { return t.estimateMinutes }
func (t *Task) Deadline() *time.Time             { return t.deadline }
func (t *Task) Priority() value_objects.Priority { return t.priority }
func (t *Task) IsCompleted() bool                { return t.completed }
func (t *Task) CompletedAt() *time.Time          { return t.completedAt }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDescription updates the task description.
func (t *Task) SetDescription(description string) {
	t.description = strings.TrimSpace(description)
	t.Touch()
}

// SetEstimate updates the estimated duration in minutes.
func (t *Task) SetEstimate(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidEstimate
	}
	t.estimateMinutes = minutes
	t.Touch()
	return nil
}

// SetDeadline updates the deadline. A nil deadline clears it.
func (t *Task) SetDeadline(deadline *time.Time) {
	t.deadline = deadline
	t.Touch()
}

// SetPriority updates the task priority.
func (t *Task) SetPriority(priority value_objects.Priority) error {
	if !priority.IsValid() {
		return value_objects.ErrInvalidPriority
	}
	t.priority = priority
	t.Touch()
	return nil
}

// ToggleComplete flips the completion flag. The completion timestamp is
// present exactly when the flag is set.
func (t *Task) ToggleComplete() {
	if t.completed {
		t.completed = false
		t.completedAt = nil
		t.Touch()
		t.AddDomainEvent(NewTaskReopened(t.ID()))
		return
	}

	now := time.Now().UTC()
	t.completed = true
	t.completedAt = &now
	t.Touch()
	t.AddDomainEvent(NewTaskCompleted(t.ID(), t.title))
}

// Rehydrate recreates a task from persisted state.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	estimateMinutes int,
	deadline *time.Time,
	priority value_objects.Priority,
	completed bool,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(
			domain.RehydrateBaseEntity(id, createdAt, updatedAt),
		),
		title:           title,
		description:     description,
		estimateMinutes: estimateMinutes,
		deadline:        deadline,
		priority:        priority,
		completed:       completed,
		completedAt:     completedAt,
	}
}
