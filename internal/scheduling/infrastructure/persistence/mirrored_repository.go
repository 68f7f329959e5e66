package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

// scheduleMirror is the fast secondary store behind MirroredScheduleRepository.
type scheduleMirror interface {
	Load(ctx context.Context, date time.Time) (*domain.DaySchedule, error)
	Store(ctx context.Context, schedule *domain.DaySchedule) error
	Remove(ctx context.Context, date time.Time) error
}

// ProvisionalSchedule is a two-phase read result. Schedule holds the mirror's
// answer, available immediately; Settled delivers the durable store's answer
// once the slower read completes. The two may differ when the mirror has
// drifted; the settled value wins.
type ProvisionalSchedule struct {
	Schedule *domain.DaySchedule
	Settled  <-chan *domain.DaySchedule
}

// MirroredScheduleRepository layers a fast mirror over a durable
// ScheduleRepository. Writes go to durable storage first and are copied into
// the mirror best-effort; a mirror failure is logged and never propagated.
type MirroredScheduleRepository struct {
	durable domain.ScheduleRepository
	mirror  scheduleMirror
	logger  *slog.Logger
}

// NewMirroredScheduleRepository creates a MirroredScheduleRepository.
func NewMirroredScheduleRepository(durable domain.ScheduleRepository, mirror scheduleMirror, logger *slog.Logger) *MirroredScheduleRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MirroredScheduleRepository{durable: durable, mirror: mirror, logger: logger}
}

// Load reads from durable storage and refreshes the mirror with the result.
func (r *MirroredScheduleRepository) Load(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	schedule, err := r.durable.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	r.refreshMirror(ctx, date, schedule)
	return schedule, nil
}

// LoadProvisional returns the mirror's answer immediately and resolves the
// durable answer in the background. Mirror errors degrade to a nil
// provisional value; the caller still gets the settled result.
func (r *MirroredScheduleRepository) LoadProvisional(ctx context.Context, date time.Time) (*ProvisionalSchedule, error) {
	provisional, err := r.mirror.Load(ctx, date)
	if err != nil {
		r.logger.Warn("schedule mirror read failed", "date", date.Format(dateLayout), "error", err)
		provisional = nil
	}

	settled := make(chan *domain.DaySchedule, 1)
	go func() {
		defer close(settled)
		schedule, err := r.durable.Load(ctx, date)
		if err != nil {
			r.logger.Warn("durable schedule read failed", "date", date.Format(dateLayout), "error", err)
			return
		}
		r.refreshMirror(ctx, date, schedule)
		settled <- schedule
	}()

	return &ProvisionalSchedule{Schedule: provisional, Settled: settled}, nil
}

// Save writes to durable storage, then mirrors.
func (r *MirroredScheduleRepository) Save(ctx context.Context, schedule *domain.DaySchedule) error {
	if err := r.durable.Save(ctx, schedule); err != nil {
		return err
	}
	if err := r.mirror.Store(ctx, schedule); err != nil {
		r.logger.Warn("schedule mirror write failed", "date", schedule.DateKey(), "error", err)
	}
	return nil
}

// Delete removes from durable storage, then from the mirror.
func (r *MirroredScheduleRepository) Delete(ctx context.Context, date time.Time) error {
	if err := r.durable.Delete(ctx, date); err != nil {
		return err
	}
	if err := r.mirror.Remove(ctx, date); err != nil {
		r.logger.Warn("schedule mirror delete failed", "date", date.Format(dateLayout), "error", err)
	}
	return nil
}

func (r *MirroredScheduleRepository) refreshMirror(ctx context.Context, date time.Time, schedule *domain.DaySchedule) {
	var err error
	if schedule == nil {
		err = r.mirror.Remove(ctx, date)
	} else {
		err = r.mirror.Store(ctx, schedule)
	}
	if err != nil {
		r.logger.Warn("schedule mirror refresh failed", "date", date.Format(dateLayout), "error", err)
	}
}
