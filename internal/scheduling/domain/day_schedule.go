package domain

import (
	"errors"
	"time"

	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
)

var (
	// ErrNoCredential is returned when schedule generation is requested
	// without a configured Gemini API key.
	ErrNoCredential = errors.New("no API key configured")

	// ErrNoPendingTasks is returned when schedule generation is requested
	// with zero pending tasks.
	ErrNoPendingTasks = errors.New("no pending tasks to schedule")

	// ErrScheduleNotFound is returned when confirm or clear is invoked and
	// no schedule exists for the date.
	ErrScheduleNotFound = errors.New("no schedule exists for this date")

	// ErrScheduleConfirmed is returned when a revision is attempted on a
	// confirmed schedule. Clear the day first to renegotiate.
	ErrScheduleConfirmed = errors.New("schedule is already confirmed")
)

// DaySchedule is the persisted day plan for one calendar date. It carries
// either free-form narrative content (negotiated) or a structured block list
// (locally generated). At most one DaySchedule exists per date; the
// repository keys on the date.
type DaySchedule struct {
	sharedDomain.BaseAggregateRoot
	date      time.Time
	content   string
	blocks    []Block
	confirmed bool
	notes     string
}

// NewDaySchedule creates an empty schedule for a date, normalized to the
// start of day.
func NewDaySchedule(date time.Time) *DaySchedule {
	return &DaySchedule{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		date:              time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
	}
}

// Getters

func (s *DaySchedule) Date() time.Time  { return s.date }
func (s *DaySchedule) Content() string  { return s.content }
func (s *DaySchedule) Blocks() []Block  { return s.blocks }
func (s *DaySchedule) IsConfirmed() bool { return s.confirmed }
func (s *DaySchedule) Notes() string    { return s.notes }

// DateKey returns the date formatted as YYYY-MM-DD.
func (s *DaySchedule) DateKey() string {
	return s.date.Format("2006-01-02")
}

// SetContent replaces the narrative content. Every revision resets the
// confirmed flag until the user explicitly confirms again.
func (s *DaySchedule) SetContent(content string) {
	s.content = content
	s.confirmed = false
	s.Touch()
}

// SetBlocks replaces the structured block list and resets confirmation.
func (s *DaySchedule) SetBlocks(blocks []Block) {
	s.blocks = blocks
	s.confirmed = false
	s.Touch()
}

// SetNotes updates the free-text notes.
func (s *DaySchedule) SetNotes(notes string) {
	s.notes = notes
	s.Touch()
}

// Confirm marks the schedule as accepted by the user.
func (s *DaySchedule) Confirm() {
	s.confirmed = true
	s.Touch()
	s.AddDomainEvent(NewScheduleConfirmed(s.ID(), s.DateKey()))
}

// RehydrateDaySchedule recreates a schedule from persisted state.
func RehydrateDaySchedule(
	entity sharedDomain.BaseEntity,
	date time.Time,
	content string,
	blocks []Block,
	confirmed bool,
	notes string,
) *DaySchedule {
	return &DaySchedule{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(entity),
		date:              time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		content:           content,
		blocks:            blocks,
		confirmed:         confirmed,
		notes:             notes,
	}
}
