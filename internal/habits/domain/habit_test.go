package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHabit(t *testing.T) {
	habit, err := NewHabit("  Morning run  ", "🏃")

	require.NoError(t, err)
	assert.Equal(t, "Morning run", habit.Name)
	assert.Equal(t, "🏃", habit.Icon)
	assert.Equal(t, FrequencyDaily, habit.Frequency, "daily is the default cadence")

	events := habit.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeyCreated, events[0].RoutingKey())
}

func TestNewHabitEmptyName(t *testing.T) {
	_, err := NewHabit("   ", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRehydrateHabitReplaysNoEvents(t *testing.T) {
	original, err := NewHabit("Morning run", "🏃")
	require.NoError(t, err)

	restored := RehydrateHabit(original.BaseEntity, "Morning run", "🏃", FrequencyWeekly)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, FrequencyWeekly, restored.Frequency)
	assert.Empty(t, restored.DomainEvents())
}

func TestHabitLogDateKey(t *testing.T) {
	log := HabitLog{
		HabitID:   uuid.New(),
		Date:      time.Date(2026, 8, 28, 16, 45, 0, 0, time.UTC),
		Completed: true,
	}

	assert.Equal(t, "2026-08-28", log.DateKey())
}
