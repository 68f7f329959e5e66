// Package commands holds the wellness write operations.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/lifeflow/internal/wellness/domain"
)

// LogSleepCommand records a night's sleep for a wake-up date. Logging the
// same date twice updates the existing record.
type LogSleepCommand struct {
	Date     time.Time
	BedTime  string
	WakeTime string
	Quality  int
	Notes    string
}

// LogSleepResult carries the saved record.
type LogSleepResult struct {
	Record *domain.SleepRecord
}

// LogSleepHandler handles LogSleepCommand.
type LogSleepHandler struct {
	repo      domain.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewLogSleepHandler creates a LogSleepHandler.
func NewLogSleepHandler(repo domain.Repository, publisher eventbus.Publisher, logger *slog.Logger) *LogSleepHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSleepHandler{repo: repo, publisher: publisher, logger: logger}
}

// Handle upserts the record for the date.
func (h *LogSleepHandler) Handle(ctx context.Context, cmd LogSleepCommand) (*LogSleepResult, error) {
	record, err := h.repo.FindByDate(ctx, cmd.Date)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record, err = domain.NewSleepRecord(cmd.Date, cmd.BedTime, cmd.WakeTime, cmd.Quality)
		if err != nil {
			return nil, fmt.Errorf("invalid sleep record: %w", err)
		}
	} else {
		if err := record.Update(cmd.BedTime, cmd.WakeTime, cmd.Quality); err != nil {
			return nil, fmt.Errorf("invalid sleep record: %w", err)
		}
		record.AddDomainEvent(domain.NewSleepLogged(record.ID(), record.DateKey(), record.DurationMinutes()))
	}
	if cmd.Notes != "" {
		record.SetNotes(cmd.Notes)
	}

	if err := h.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	// Event delivery is best-effort; a lost event never fails the write.
	if err := eventbus.PublishEvents(ctx, h.publisher, record.DomainEvents()); err != nil {
		h.logger.Warn("failed to publish sleep events", "error", err)
	}
	record.ClearDomainEvents()

	return &LogSleepResult{Record: record}, nil
}
