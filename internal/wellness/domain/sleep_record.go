// Package domain holds the wellness context's model: nightly sleep records.
package domain

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	scheduling "github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

// SleepRecord is one night's sleep, keyed to the wake-up date. Bed and wake
// times are clock positions; a bed time after midnight still belongs to the
// previous night's record.
type SleepRecord struct {
	domain.BaseAggregateRoot
	Date     time.Time
	BedTime  string
	WakeTime string
	Quality  int
	Notes    string
}

// NewSleepRecord creates a sleep record for a date with validation. Quality
// is a 1-5 self-assessment; zero means not rated.
func NewSleepRecord(date time.Time, bedTime, wakeTime string, quality int) (*SleepRecord, error) {
	if quality < 0 || quality > 5 {
		return nil, fmt.Errorf("quality %d out of range [0, 5]", quality)
	}

	record := &SleepRecord{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		Date:              normalizeToDay(date),
		BedTime:           bedTime,
		WakeTime:          wakeTime,
		Quality:           quality,
	}
	record.AddDomainEvent(NewSleepLogged(record.ID(), record.DateKey(), record.DurationMinutes()))
	return record, nil
}

// RehydrateSleepRecord recreates a record from persisted state.
func RehydrateSleepRecord(
	entity domain.BaseEntity,
	date time.Time,
	bedTime, wakeTime string,
	quality int,
	notes string,
) *SleepRecord {
	return &SleepRecord{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(entity),
		Date:              normalizeToDay(date),
		BedTime:           bedTime,
		WakeTime:          wakeTime,
		Quality:           quality,
		Notes:             notes,
	}
}

// DateKey returns the wake-up date formatted as YYYY-MM-DD.
func (r *SleepRecord) DateKey() string {
	return r.Date.Format("2006-01-02")
}

// DurationMinutes returns the night's sleep length, handling the
// past-midnight bed time.
func (r *SleepRecord) DurationMinutes() int {
	if r.BedTime == "" || r.WakeTime == "" {
		return 0
	}
	bed := scheduling.ParseClock(r.BedTime).At(r.Date)
	wake := scheduling.ParseClock(r.WakeTime).At(r.Date)
	return scheduling.SleepDuration(bed, wake)
}

// SetNotes sets the free-text notes.
func (r *SleepRecord) SetNotes(notes string) {
	r.Notes = notes
	r.Touch()
}

// Update replaces the night's times and quality.
func (r *SleepRecord) Update(bedTime, wakeTime string, quality int) error {
	if quality < 0 || quality > 5 {
		return fmt.Errorf("quality %d out of range [0, 5]", quality)
	}
	r.BedTime = bedTime
	r.WakeTime = wakeTime
	r.Quality = quality
	r.Touch()
	return nil
}

func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
