// Package commands holds the scheduling write operations.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/application/services"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
)

// PlanDayCommand requests a locally computed schedule for a date. No network
// is involved; the greedy scheduler places pending tasks around the user's
// rhythm.
type PlanDayCommand struct {
	Date time.Time
}

// PlanDayResult carries the generated plan.
type PlanDayResult struct {
	Schedule *domain.DaySchedule
}

// PlanDayHandler handles PlanDayCommand.
type PlanDayHandler struct {
	scheduleRepo domain.ScheduleRepository
	tasks        services.PendingTaskProvider
	settings     *settings.Service
	scheduler    services.LocalScheduler
	publisher    eventbus.Publisher
	logger       *slog.Logger
}

// NewPlanDayHandler creates a PlanDayHandler.
func NewPlanDayHandler(
	scheduleRepo domain.ScheduleRepository,
	tasks services.PendingTaskProvider,
	settingsService *settings.Service,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *PlanDayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanDayHandler{
		scheduleRepo: scheduleRepo,
		tasks:        tasks,
		settings:     settingsService,
		scheduler:    services.NewLocalScheduler(),
		publisher:    publisher,
		logger:       logger,
	}
}

// Handle builds and persists the day plan. Fails with
// domain.ErrNoPendingTasks when nothing is pending.
func (h *PlanDayHandler) Handle(ctx context.Context, cmd PlanDayCommand) (*PlanDayResult, error) {
	pending, err := h.tasks.PendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending tasks: %w", err)
	}
	if len(pending) == 0 {
		return nil, domain.ErrNoPendingTasks
	}

	prefs, err := h.settings.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	blocks := h.scheduler.BuildDay(pending, prefs)

	schedule, err := h.scheduleRepo.Load(ctx, cmd.Date)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = domain.NewDaySchedule(cmd.Date)
	}
	schedule.SetBlocks(blocks)
	schedule.AddDomainEvent(domain.NewScheduleGenerated(schedule.ID(), schedule.DateKey(), domain.ScheduleSourceLocal))

	if err := h.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	// Event delivery is best-effort; a lost event never fails the write.
	if err := eventbus.PublishEvents(ctx, h.publisher, schedule.DomainEvents()); err != nil {
		h.logger.Warn("failed to publish schedule events", "error", err)
	}
	schedule.ClearDomainEvents()

	return &PlanDayResult{Schedule: schedule}, nil
}
