// Package commands holds the habits write operations.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lifeflow/internal/habits/domain"
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
)

// ErrHabitNotFound is returned when an operation references a habit that
// does not exist.
var ErrHabitNotFound = errors.New("habit not found")

// CreateHabitCommand adds a habit.
type CreateHabitCommand struct {
	Name string
	Icon string
}

// DeleteHabitCommand removes a habit. Its logs are kept.
type DeleteHabitCommand struct {
	HabitID uuid.UUID
}

// ToggleHabitLogCommand flips a habit's completion for a date.
type ToggleHabitLogCommand struct {
	HabitID uuid.UUID
	Date    time.Time
}

// ToggleHabitLogResult reports the new completion state.
type ToggleHabitLogResult struct {
	Completed bool
}

// HabitHandler handles the habit commands.
type HabitHandler struct {
	repo      domain.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(repo domain.Repository, publisher eventbus.Publisher, logger *slog.Logger) *HabitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HabitHandler{repo: repo, publisher: publisher, logger: logger}
}

// Create adds a habit.
func (h *HabitHandler) Create(ctx context.Context, cmd CreateHabitCommand) (*domain.Habit, error) {
	habit, err := domain.NewHabit(cmd.Name, cmd.Icon)
	if err != nil {
		return nil, fmt.Errorf("invalid habit: %w", err)
	}
	if err := h.repo.Save(ctx, habit); err != nil {
		return nil, err
	}
	h.publish(ctx, habit.DomainEvents())
	habit.ClearDomainEvents()
	return habit, nil
}

// Delete removes a habit.
func (h *HabitHandler) Delete(ctx context.Context, cmd DeleteHabitCommand) error {
	habit, err := h.repo.FindByID(ctx, cmd.HabitID)
	if err != nil {
		return err
	}
	if habit == nil {
		return ErrHabitNotFound
	}
	if err := h.repo.Delete(ctx, cmd.HabitID); err != nil {
		return err
	}
	h.publish(ctx, []sharedDomain.DomainEvent{domain.NewHabitDeleted(cmd.HabitID)})
	return nil
}

// ToggleLog flips the habit's completion for the date, creating the log on
// first toggle.
func (h *HabitHandler) ToggleLog(ctx context.Context, cmd ToggleHabitLogCommand) (*ToggleHabitLogResult, error) {
	habit, err := h.repo.FindByID(ctx, cmd.HabitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	log, err := h.repo.FindLog(ctx, cmd.HabitID, cmd.Date)
	if err != nil {
		return nil, err
	}

	next := domain.HabitLog{HabitID: cmd.HabitID, Date: cmd.Date, Completed: true}
	if log != nil {
		next.Completed = !log.Completed
	}
	if err := h.repo.SaveLog(ctx, next); err != nil {
		return nil, err
	}

	h.publish(ctx, []sharedDomain.DomainEvent{domain.NewHabitLogged(cmd.HabitID, next.DateKey(), next.Completed)})
	return &ToggleHabitLogResult{Completed: next.Completed}, nil
}

func (h *HabitHandler) publish(ctx context.Context, events []sharedDomain.DomainEvent) {
	// Event delivery is best-effort; a lost event never fails the write.
	if err := eventbus.PublishEvents(ctx, h.publisher, events); err != nil {
		h.logger.Warn("failed to publish habit events", "error", err)
	}
}
