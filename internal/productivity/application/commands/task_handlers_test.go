package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindPending(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestTask(t *testing.T) *task.Task {
	t.Helper()
	created, err := task.NewTask("Write report", 60)
	require.NoError(t, err)
	created.ClearDomainEvents()
	return created
}

func TestCreateTaskHandler(t *testing.T) {
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)
	publisher.On("Publish", mock.Anything, task.RoutingKeyCreated, mock.Anything).Return(nil)

	handler := NewCreateTaskHandler(repo, publisher)
	result, err := handler.Handle(context.Background(), CreateTaskCommand{
		Title:           "Write report",
		Priority:        "high",
		EstimateMinutes: 60,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.TaskID)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateTaskHandlerInvalidPriority(t *testing.T) {
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)

	handler := NewCreateTaskHandler(repo, publisher)
	_, err := handler.Handle(context.Background(), CreateTaskCommand{
		Title:           "Write report",
		Priority:        "urgent",
		EstimateMinutes: 60,
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateTaskHandlerSurvivesPublishFailure(t *testing.T) {
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	handler := NewCreateTaskHandler(repo, publisher)
	result, err := handler.Handle(context.Background(), CreateTaskCommand{
		Title:           "Write report",
		EstimateMinutes: 60,
	})

	require.NoError(t, err, "event delivery is best-effort")
	assert.NotEqual(t, uuid.Nil, result.TaskID)
}

func TestToggleTaskHandler(t *testing.T) {
	existing := newTestTask(t)
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)
	publisher.On("Publish", mock.Anything, task.RoutingKeyCompleted, mock.Anything).Return(nil)

	handler := NewToggleTaskHandler(repo, publisher)
	result, err := handler.Handle(context.Background(), ToggleTaskCommand{TaskID: existing.ID()})

	require.NoError(t, err)
	assert.True(t, result.Completed)
	publisher.AssertExpectations(t)
}

func TestToggleTaskHandlerNotFound(t *testing.T) {
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	handler := NewToggleTaskHandler(repo, publisher)
	_, err := handler.Handle(context.Background(), ToggleTaskCommand{TaskID: id})

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskHandler(t *testing.T) {
	existing := newTestTask(t)
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)
	publisher.On("Publish", mock.Anything, task.RoutingKeyUpdated, mock.Anything).Return(nil)

	title := "Publish report"
	estimate := 90
	handler := NewUpdateTaskHandler(repo, publisher)
	err := handler.Handle(context.Background(), UpdateTaskCommand{
		TaskID:          existing.ID(),
		Title:           &title,
		EstimateMinutes: &estimate,
	})

	require.NoError(t, err)
	assert.Equal(t, "Publish report", existing.Title())
	assert.Equal(t, 90, existing.EstimateMinutes())
	publisher.AssertExpectations(t)
}

func TestUpdateTaskHandlerNoChangesSkipsSave(t *testing.T) {
	existing := newTestTask(t)
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)

	handler := NewUpdateTaskHandler(repo, publisher)
	err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: existing.ID()})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateTaskHandlerClearDeadline(t *testing.T) {
	existing := newTestTask(t)
	due := existing.CreatedAt().AddDate(0, 0, 7)
	existing.SetDeadline(&due)

	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)
	publisher.On("Publish", mock.Anything, task.RoutingKeyUpdated, mock.Anything).Return(nil)

	handler := NewUpdateTaskHandler(repo, publisher)
	err := handler.Handle(context.Background(), UpdateTaskCommand{
		TaskID:        existing.ID(),
		ClearDeadline: true,
	})

	require.NoError(t, err)
	assert.Nil(t, existing.Deadline())
}

func TestDeleteTaskHandler(t *testing.T) {
	existing := newTestTask(t)
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)
	repo.On("Delete", mock.Anything, existing.ID()).Return(nil)
	publisher.On("Publish", mock.Anything, task.RoutingKeyDeleted, mock.Anything).Return(nil)

	handler := NewDeleteTaskHandler(repo, publisher)
	err := handler.Handle(context.Background(), DeleteTaskCommand{TaskID: existing.ID()})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteTaskHandlerNotFound(t *testing.T) {
	repo := new(mockTaskRepo)
	publisher := new(mockPublisher)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	handler := NewDeleteTaskHandler(repo, publisher)
	err := handler.Handle(context.Background(), DeleteTaskCommand{TaskID: id})

	assert.ErrorIs(t, err, ErrTaskNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
