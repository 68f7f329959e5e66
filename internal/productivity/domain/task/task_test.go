package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/value_objects"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("  Write report  ", 60)

	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title())
	assert.Equal(t, 60, task.EstimateMinutes())
	assert.Equal(t, value_objects.PriorityMedium, task.Priority())
	assert.False(t, task.IsCompleted())
	assert.Nil(t, task.CompletedAt())

	events := task.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeyCreated, events[0].RoutingKey())
}

func TestNewTaskValidation(t *testing.T) {
	_, err := NewTask("   ", 30)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewTask("Write report", 0)
	assert.ErrorIs(t, err, ErrInvalidEstimate)

	_, err = NewTask("Write report", -5)
	assert.ErrorIs(t, err, ErrInvalidEstimate)
}

func TestToggleComplete(t *testing.T) {
	task, err := NewTask("Write report", 60)
	require.NoError(t, err)
	task.ClearDomainEvents()

	task.ToggleComplete()

	assert.True(t, task.IsCompleted())
	require.NotNil(t, task.CompletedAt())
	events := task.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeyCompleted, events[0].RoutingKey())

	task.ClearDomainEvents()
	task.ToggleComplete()

	assert.False(t, task.IsCompleted())
	assert.Nil(t, task.CompletedAt(), "reopening clears the completion timestamp")
	events = task.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeyReopened, events[0].RoutingKey())
}

func TestTaskSetters(t *testing.T) {
	task, err := NewTask("Write report", 60)
	require.NoError(t, err)

	require.NoError(t, task.SetTitle("Publish report"))
	assert.Equal(t, "Publish report", task.Title())
	assert.ErrorIs(t, task.SetTitle("  "), ErrEmptyTitle)

	require.NoError(t, task.SetEstimate(90))
	assert.Equal(t, 90, task.EstimateMinutes())
	assert.ErrorIs(t, task.SetEstimate(0), ErrInvalidEstimate)

	require.NoError(t, task.SetPriority(value_objects.PriorityHigh))
	assert.Equal(t, value_objects.PriorityHigh, task.Priority())
	assert.ErrorIs(t, task.SetPriority(value_objects.Priority(99)), value_objects.ErrInvalidPriority)

	due := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	task.SetDeadline(&due)
	require.NotNil(t, task.Deadline())
	assert.Equal(t, due, *task.Deadline())
	task.SetDeadline(nil)
	assert.Nil(t, task.Deadline())
}

func TestRehydrateReplaysNoEvents(t *testing.T) {
	original, err := NewTask("Write report", 60)
	require.NoError(t, err)

	restored := Rehydrate(
		original.ID(),
		original.Title(), "notes",
		original.EstimateMinutes(),
		nil,
		value_objects.PriorityHigh,
		false, nil,
		original.CreatedAt(), original.UpdatedAt(),
	)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, "notes", restored.Description())
	assert.Equal(t, value_objects.PriorityHigh, restored.Priority())
	assert.Empty(t, restored.DomainEvents())
}

func TestParsePriority(t *testing.T) {
	p, err := value_objects.ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, value_objects.PriorityHigh, p)

	_, err = value_objects.ParsePriority("urgent")
	assert.ErrorIs(t, err, value_objects.ErrInvalidPriority)

	assert.Greater(t, value_objects.PriorityHigh.Weight(), value_objects.PriorityLow.Weight())
}
