package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines storage for habits and their logs.
type Repository interface {
	// FindByID returns the habit, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Habit, error)
	FindAll(ctx context.Context) ([]*Habit, error)
	Save(ctx context.Context, habit *Habit) error
	// Delete removes the habit. Its logs are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindLog returns the log for a habit and date, or nil when absent.
	FindLog(ctx context.Context, habitID uuid.UUID, date time.Time) (*HabitLog, error)
	// LogsForDate returns all logs on a date, keyed by habit ID.
	LogsForDate(ctx context.Context, date time.Time) (map[uuid.UUID]HabitLog, error)
	SaveLog(ctx context.Context, log HabitLog) error
}
