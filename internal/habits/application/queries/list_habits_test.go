package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/habits/domain"
)

type fakeHabitRepo struct {
	habits []*domain.Habit
	logs   map[uuid.UUID]domain.HabitLog
}

func (r *fakeHabitRepo) FindByID(context.Context, uuid.UUID) (*domain.Habit, error) { return nil, nil }
func (r *fakeHabitRepo) FindAll(context.Context) ([]*domain.Habit, error)           { return r.habits, nil }
func (r *fakeHabitRepo) Save(context.Context, *domain.Habit) error                  { return nil }
func (r *fakeHabitRepo) Delete(context.Context, uuid.UUID) error                    { return nil }
func (r *fakeHabitRepo) FindLog(context.Context, uuid.UUID, time.Time) (*domain.HabitLog, error) {
	return nil, nil
}
func (r *fakeHabitRepo) LogsForDate(context.Context, time.Time) (map[uuid.UUID]domain.HabitLog, error) {
	return r.logs, nil
}
func (r *fakeHabitRepo) SaveLog(context.Context, domain.HabitLog) error { return nil }

func TestListHabitsResolvesDoneToday(t *testing.T) {
	run, err := domain.NewHabit("Morning run", "🏃")
	require.NoError(t, err)
	read, err := domain.NewHabit("Read", "📚")
	require.NoError(t, err)
	skipped, err := domain.NewHabit("Meditate", "")
	require.NoError(t, err)

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	repo := &fakeHabitRepo{
		habits: []*domain.Habit{run, read, skipped},
		logs: map[uuid.UUID]domain.HabitLog{
			run.ID():  {HabitID: run.ID(), Date: date, Completed: true},
			read.ID(): {HabitID: read.ID(), Date: date, Completed: false},
		},
	}

	views, err := NewListHabitsHandler(repo).Handle(context.Background(), ListHabitsQuery{Date: date})

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.True(t, views[0].DoneToday)
	assert.False(t, views[1].DoneToday, "a toggled-off log counts as not done")
	assert.False(t, views[2].DoneToday, "no log means not done")
	assert.Equal(t, "daily", views[0].Frequency)
}
