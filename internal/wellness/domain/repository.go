package domain

import (
	"context"
	"time"
)

// Repository defines storage for sleep records, keyed by wake-up date.
type Repository interface {
	// FindByDate returns the record for a date, or nil when absent.
	FindByDate(ctx context.Context, date time.Time) (*SleepRecord, error)
	// FindRange returns records with dates in [from, to], oldest first.
	FindRange(ctx context.Context, from, to time.Time) ([]*SleepRecord, error)
	Save(ctx context.Context, record *SleepRecord) error
	Delete(ctx context.Context, date time.Time) error
}
