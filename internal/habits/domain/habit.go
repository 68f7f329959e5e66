// Package domain holds the habits context's model: recurring habits and
// their per-day completion logs.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

// ErrEmptyName is returned when a habit is created without a name.
var ErrEmptyName = errors.New("habit name cannot be empty")

// Frequency is how often a habit recurs.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit is a recurring practice the user tracks.
type Habit struct {
	domain.BaseAggregateRoot
	Name      string
	Icon      string
	Frequency Frequency
}

// NewHabit creates a habit with validation.
func NewHabit(name, icon string) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	habit := &Habit{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		Name:              name,
		Icon:              icon,
		Frequency:         FrequencyDaily,
	}
	habit.AddDomainEvent(NewHabitCreated(habit.ID(), name))
	return habit, nil
}

// RehydrateHabit recreates a habit from persisted state.
func RehydrateHabit(entity domain.BaseEntity, name, icon string, frequency Frequency) *Habit {
	return &Habit{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(entity),
		Name:              name,
		Icon:              icon,
		Frequency:         frequency,
	}
}

// HabitLog marks one habit on one date. Logs carry no identity of their own;
// the (habit, date) pair is the key.
type HabitLog struct {
	HabitID   uuid.UUID
	Date      time.Time
	Completed bool
}

// DateKey returns the log date formatted as YYYY-MM-DD.
func (l HabitLog) DateKey() string {
	return l.Date.Format("2006-01-02")
}
