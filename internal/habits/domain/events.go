package domain

import (
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "Habit"

	RoutingKeyCreated = "core.habit.created"
	RoutingKeyDeleted = "core.habit.deleted"
	RoutingKeyLogged  = "core.habit.logged"
)

// HabitCreated is emitted when a habit is created.
type HabitCreated struct {
	sharedDomain.BaseEvent
	Name string `json:"name"`
}

// NewHabitCreated creates a HabitCreated event.
func NewHabitCreated(habitID uuid.UUID, name string) HabitCreated {
	return HabitCreated{
		BaseEvent: sharedDomain.NewBaseEvent(habitID, AggregateType, RoutingKeyCreated),
		Name:      name,
	}
}

// HabitDeleted is emitted when a habit is removed.
type HabitDeleted struct {
	sharedDomain.BaseEvent
}

// NewHabitDeleted creates a HabitDeleted event.
func NewHabitDeleted(habitID uuid.UUID) HabitDeleted {
	return HabitDeleted{
		BaseEvent: sharedDomain.NewBaseEvent(habitID, AggregateType, RoutingKeyDeleted),
	}
}

// HabitLogged is emitted when a habit's completion is toggled for a date.
type HabitLogged struct {
	sharedDomain.BaseEvent
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// NewHabitLogged creates a HabitLogged event.
func NewHabitLogged(habitID uuid.UUID, date string, completed bool) HabitLogged {
	return HabitLogged{
		BaseEvent: sharedDomain.NewBaseEvent(habitID, AggregateType, RoutingKeyLogged),
		Date:      date,
		Completed: completed,
	}
}
