// Package queries holds the scheduling read operations.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

// GetScheduleQuery fetches the plan for a single date.
type GetScheduleQuery struct {
	Date time.Time
}

// BlockView is the read model for one plan segment.
type BlockView struct {
	Start           string
	End             string
	DurationMinutes int
	Title           string
	Kind            string
	TaskID          *uuid.UUID
}

// DayScheduleView is the read model for a day plan.
type DayScheduleView struct {
	Date      string
	Content   string
	Blocks    []BlockView
	Confirmed bool
	Notes     string
	UpdatedAt time.Time
}

// GetScheduleHandler handles GetScheduleQuery.
type GetScheduleHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewGetScheduleHandler creates a GetScheduleHandler.
func NewGetScheduleHandler(scheduleRepo domain.ScheduleRepository) *GetScheduleHandler {
	return &GetScheduleHandler{scheduleRepo: scheduleRepo}
}

// Handle returns the schedule view for the date, or nil when no plan exists.
func (h *GetScheduleHandler) Handle(ctx context.Context, q GetScheduleQuery) (*DayScheduleView, error) {
	schedule, err := h.scheduleRepo.Load(ctx, q.Date)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	return ToView(schedule), nil
}

// ToView projects a DaySchedule into its read model.
func ToView(s *domain.DaySchedule) *DayScheduleView {
	view := &DayScheduleView{
		Date:      s.DateKey(),
		Content:   s.Content(),
		Confirmed: s.IsConfirmed(),
		Notes:     s.Notes(),
		UpdatedAt: s.UpdatedAt(),
	}
	for _, b := range s.Blocks() {
		view.Blocks = append(view.Blocks, BlockView{
			Start:           b.Start.String(),
			End:             b.End().String(),
			DurationMinutes: b.DurationMinutes,
			Title:           b.Title,
			Kind:            string(b.Kind),
			TaskID:          b.TaskID,
		})
	}
	return view
}
