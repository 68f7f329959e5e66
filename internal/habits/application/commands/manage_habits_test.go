package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/habits/domain"
)

type mockHabitRepo struct {
	mock.Mock
}

func (m *mockHabitRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *mockHabitRepo) FindAll(ctx context.Context) ([]*domain.Habit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *mockHabitRepo) Save(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *mockHabitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockHabitRepo) FindLog(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.HabitLog, error) {
	args := m.Called(ctx, habitID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HabitLog), args.Error(1)
}

func (m *mockHabitRepo) LogsForDate(ctx context.Context, date time.Time) (map[uuid.UUID]domain.HabitLog, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]domain.HabitLog), args.Error(1)
}

func (m *mockHabitRepo) SaveLog(ctx context.Context, log domain.HabitLog) error {
	args := m.Called(ctx, log)
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

var logDate = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func TestCreateHabit(t *testing.T) {
	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Habit")).Return(nil)
	publisher.On("Publish", mock.Anything, domain.RoutingKeyCreated, mock.Anything).Return(nil)

	handler := NewHabitHandler(repo, publisher, nil)
	habit, err := handler.Create(context.Background(), CreateHabitCommand{Name: "Morning run", Icon: "🏃"})

	require.NoError(t, err)
	assert.Equal(t, "Morning run", habit.Name)
	assert.Empty(t, habit.DomainEvents(), "events are cleared after publishing")
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateHabitEmptyName(t *testing.T) {
	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)

	handler := NewHabitHandler(repo, publisher, nil)
	_, err := handler.Create(context.Background(), CreateHabitCommand{Name: "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteHabit(t *testing.T) {
	habit, err := domain.NewHabit("Morning run", "")
	require.NoError(t, err)

	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, habit.ID()).Return(habit, nil)
	repo.On("Delete", mock.Anything, habit.ID()).Return(nil)
	publisher.On("Publish", mock.Anything, domain.RoutingKeyDeleted, mock.Anything).Return(nil)

	handler := NewHabitHandler(repo, publisher, nil)
	require.NoError(t, handler.Delete(context.Background(), DeleteHabitCommand{HabitID: habit.ID()}))

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteHabitNotFound(t *testing.T) {
	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	handler := NewHabitHandler(repo, publisher, nil)
	err := handler.Delete(context.Background(), DeleteHabitCommand{HabitID: id})

	assert.ErrorIs(t, err, ErrHabitNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestToggleLogFirstTimeCompletes(t *testing.T) {
	habit, err := domain.NewHabit("Morning run", "")
	require.NoError(t, err)

	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, habit.ID()).Return(habit, nil)
	repo.On("FindLog", mock.Anything, habit.ID(), logDate).Return(nil, nil)
	repo.On("SaveLog", mock.Anything, mock.MatchedBy(func(log domain.HabitLog) bool {
		return log.Completed
	})).Return(nil)
	publisher.On("Publish", mock.Anything, domain.RoutingKeyLogged, mock.Anything).Return(nil)

	handler := NewHabitHandler(repo, publisher, nil)
	result, err := handler.ToggleLog(context.Background(), ToggleHabitLogCommand{HabitID: habit.ID(), Date: logDate})

	require.NoError(t, err)
	assert.True(t, result.Completed)
}

func TestToggleLogFlipsExisting(t *testing.T) {
	habit, err := domain.NewHabit("Morning run", "")
	require.NoError(t, err)

	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	repo.On("FindByID", mock.Anything, habit.ID()).Return(habit, nil)
	existing := &domain.HabitLog{HabitID: habit.ID(), Date: logDate, Completed: true}
	repo.On("FindLog", mock.Anything, habit.ID(), logDate).Return(existing, nil)
	repo.On("SaveLog", mock.Anything, mock.MatchedBy(func(log domain.HabitLog) bool {
		return !log.Completed
	})).Return(nil)
	publisher.On("Publish", mock.Anything, domain.RoutingKeyLogged, mock.Anything).Return(nil)

	handler := NewHabitHandler(repo, publisher, nil)
	result, err := handler.ToggleLog(context.Background(), ToggleHabitLogCommand{HabitID: habit.ID(), Date: logDate})

	require.NoError(t, err)
	assert.False(t, result.Completed)
}

func TestToggleLogUnknownHabit(t *testing.T) {
	repo := new(mockHabitRepo)
	publisher := new(mockPublisher)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	handler := NewHabitHandler(repo, publisher, nil)
	_, err := handler.ToggleLog(context.Background(), ToggleHabitLogCommand{HabitID: id, Date: logDate})

	assert.ErrorIs(t, err, ErrHabitNotFound)
}
