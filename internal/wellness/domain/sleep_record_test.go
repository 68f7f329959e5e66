package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSleepRecord(t *testing.T) {
	date := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	record, err := NewSleepRecord(date, "23:00", "07:00", 4)

	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", record.DateKey(), "timestamps normalize to the wake-up day")
	assert.Equal(t, 4, record.Quality)

	events := record.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, RoutingKeySleepLogged, events[0].RoutingKey())
}

func TestNewSleepRecordQualityRange(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	_, err := NewSleepRecord(date, "23:00", "07:00", 6)
	assert.Error(t, err)

	_, err = NewSleepRecord(date, "23:00", "07:00", -1)
	assert.Error(t, err)

	record, err := NewSleepRecord(date, "23:00", "07:00", 0)
	require.NoError(t, err)
	assert.Zero(t, record.Quality, "zero means not rated")
}

func TestDurationMinutes(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bed      string
		wake     string
		expected int
	}{
		{"overnight", "23:00", "07:00", 480},
		{"past midnight bed time", "00:30", "08:00", 450},
		{"short nap logged same day", "14:00", "15:30", 90},
		{"missing bed time", "", "07:00", 0},
		{"missing wake time", "23:00", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewSleepRecord(date, tt.bed, tt.wake, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.DurationMinutes())
		})
	}
}

func TestUpdateSleepRecord(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	record, err := NewSleepRecord(date, "23:00", "07:00", 3)
	require.NoError(t, err)

	require.NoError(t, record.Update("22:30", "06:30", 5))
	assert.Equal(t, "22:30", record.BedTime)
	assert.Equal(t, 5, record.Quality)

	assert.Error(t, record.Update("22:30", "06:30", 9))
}

func TestRehydrateSleepRecordReplaysNoEvents(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	original, err := NewSleepRecord(date, "23:00", "07:00", 3)
	require.NoError(t, err)

	restored := RehydrateSleepRecord(original.BaseEntity, date, "23:00", "07:00", 3, "slept well")

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, "slept well", restored.Notes)
	assert.Empty(t, restored.DomainEvents())
}
