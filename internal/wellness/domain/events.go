package domain

import (
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "SleepRecord"

	RoutingKeySleepLogged = "core.sleep.logged"
)

// SleepLogged is emitted when a night's sleep is recorded or updated.
type SleepLogged struct {
	sharedDomain.BaseEvent
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}

// NewSleepLogged creates a SleepLogged event.
func NewSleepLogged(recordID uuid.UUID, date string, durationMinutes int) SleepLogged {
	return SleepLogged{
		BaseEvent:       sharedDomain.NewBaseEvent(recordID, AggregateType, RoutingKeySleepLogged),
		Date:            date,
		DurationMinutes: durationMinutes,
	}
}
