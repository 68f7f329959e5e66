package domain

import (
	"context"
	"time"
)

// ScheduleRepository defines storage for day schedules, keyed by date.
type ScheduleRepository interface {
	// Load returns the schedule for a date, or nil when absent.
	Load(ctx context.Context, date time.Time) (*DaySchedule, error)
	Save(ctx context.Context, schedule *DaySchedule) error
	Delete(ctx context.Context, date time.Time) error
}
