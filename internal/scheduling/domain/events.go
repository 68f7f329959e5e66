package domain

import (
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "DaySchedule"

	RoutingKeyGenerated = "core.schedule.generated"
	RoutingKeyRevised   = "core.schedule.revised"
	RoutingKeyConfirmed = "core.schedule.confirmed"
	RoutingKeyCleared   = "core.schedule.cleared"
)

// Schedule sources.
const (
	ScheduleSourceLocal  = "local"
	ScheduleSourceGemini = "gemini"
)

// ScheduleGenerated is emitted when a day plan is first produced.
type ScheduleGenerated struct {
	sharedDomain.BaseEvent
	Date   string `json:"date"`
	Source string `json:"source"`
}

// NewScheduleGenerated creates a ScheduleGenerated event.
func NewScheduleGenerated(scheduleID uuid.UUID, date, source string) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent: sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyGenerated),
		Date:      date,
		Source:    source,
	}
}

// ScheduleRevised is emitted when a negotiation turn replaces the content.
type ScheduleRevised struct {
	sharedDomain.BaseEvent
	Date string `json:"date"`
}

// NewScheduleRevised creates a ScheduleRevised event.
func NewScheduleRevised(scheduleID uuid.UUID, date string) ScheduleRevised {
	return ScheduleRevised{
		BaseEvent: sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyRevised),
		Date:      date,
	}
}

// ScheduleConfirmed is emitted when the user accepts the day plan.
type ScheduleConfirmed struct {
	sharedDomain.BaseEvent
	Date string `json:"date"`
}

// NewScheduleConfirmed creates a ScheduleConfirmed event.
func NewScheduleConfirmed(scheduleID uuid.UUID, date string) ScheduleConfirmed {
	return ScheduleConfirmed{
		BaseEvent: sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyConfirmed),
		Date:      date,
	}
}

// ScheduleCleared is emitted when the day plan is deleted.
type ScheduleCleared struct {
	sharedDomain.BaseEvent
	Date string `json:"date"`
}

// NewScheduleCleared creates a ScheduleCleared event.
func NewScheduleCleared(scheduleID uuid.UUID, date string) ScheduleCleared {
	return ScheduleCleared{
		BaseEvent: sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyCleared),
		Date:      date,
	}
}
