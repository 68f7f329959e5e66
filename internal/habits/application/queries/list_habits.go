// Package queries holds the habits read operations.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lifeflow/internal/habits/domain"
)

// ListHabitsQuery lists all habits with their completion for a date.
type ListHabitsQuery struct {
	Date time.Time
}

// HabitView is the read model for one habit.
type HabitView struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Frequency string
	DoneToday bool
}

// ListHabitsHandler handles ListHabitsQuery.
type ListHabitsHandler struct {
	repo domain.Repository
}

// NewListHabitsHandler creates a ListHabitsHandler.
func NewListHabitsHandler(repo domain.Repository) *ListHabitsHandler {
	return &ListHabitsHandler{repo: repo}
}

// Handle returns all habits with DoneToday resolved against the query date.
func (h *ListHabitsHandler) Handle(ctx context.Context, q ListHabitsQuery) ([]HabitView, error) {
	habits, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := h.repo.LogsForDate(ctx, q.Date)
	if err != nil {
		return nil, err
	}

	views := make([]HabitView, 0, len(habits))
	for _, habit := range habits {
		log, ok := logs[habit.ID()]
		views = append(views, HabitView{
			ID:        habit.ID(),
			Name:      habit.Name,
			Icon:      habit.Icon,
			Frequency: string(habit.Frequency),
			DoneToday: ok && log.Completed,
		})
	}
	return views, nil
}
