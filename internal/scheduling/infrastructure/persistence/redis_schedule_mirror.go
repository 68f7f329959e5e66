package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
)

const mirrorKeyPrefix = "lifeflow:schedule:"

// scheduleRecord is the mirror's wire form of a DaySchedule.
type scheduleRecord struct {
	ID        uuid.UUID     `json:"id"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	Blocks    []blockRecord `json:"blocks,omitempty"`
	Confirmed bool          `json:"confirmed"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type blockRecord struct {
	Start           string     `json:"start"`
	DurationMinutes int        `json:"duration_minutes"`
	Title           string     `json:"title"`
	Kind            string     `json:"kind"`
	TaskID          *uuid.UUID `json:"task_id,omitempty"`
}

// RedisScheduleMirror keeps a fast, disposable copy of each day schedule in
// Redis. It is never the source of truth: every entry can be rebuilt from the
// durable repository, so mirror failures are tolerable everywhere.
type RedisScheduleMirror struct {
	client *redis.Client
}

// NewRedisScheduleMirror creates a RedisScheduleMirror.
func NewRedisScheduleMirror(client *redis.Client) *RedisScheduleMirror {
	return &RedisScheduleMirror{client: client}
}

// Load returns the mirrored schedule for a date, or nil when absent.
func (m *RedisScheduleMirror) Load(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	data, err := m.client.Get(ctx, mirrorKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read schedule mirror: %w", err)
	}

	var rec scheduleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode schedule mirror: %w", err)
	}
	return rec.toDomain(date.Location())
}

// Store writes the schedule into the mirror.
func (m *RedisScheduleMirror) Store(ctx context.Context, schedule *domain.DaySchedule) error {
	data, err := json.Marshal(recordFromDomain(schedule))
	if err != nil {
		return fmt.Errorf("failed to encode schedule mirror: %w", err)
	}
	if err := m.client.Set(ctx, mirrorKeyPrefix+schedule.DateKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write schedule mirror: %w", err)
	}
	return nil
}

// Remove drops the mirrored schedule for a date.
func (m *RedisScheduleMirror) Remove(ctx context.Context, date time.Time) error {
	if err := m.client.Del(ctx, mirrorKey(date)).Err(); err != nil {
		return fmt.Errorf("failed to delete schedule mirror: %w", err)
	}
	return nil
}

func mirrorKey(date time.Time) string {
	return mirrorKeyPrefix + date.Format(dateLayout)
}

func recordFromDomain(schedule *domain.DaySchedule) scheduleRecord {
	rec := scheduleRecord{
		ID:        schedule.ID(),
		Date:      schedule.DateKey(),
		Content:   schedule.Content(),
		Confirmed: schedule.IsConfirmed(),
		Notes:     schedule.Notes(),
		CreatedAt: schedule.CreatedAt().UTC(),
		UpdatedAt: schedule.UpdatedAt().UTC(),
	}
	for _, b := range schedule.Blocks() {
		rec.Blocks = append(rec.Blocks, blockRecord{
			Start:           b.Start.String(),
			DurationMinutes: b.DurationMinutes,
			Title:           b.Title,
			Kind:            string(b.Kind),
			TaskID:          b.TaskID,
		})
	}
	return rec
}

func (rec scheduleRecord) toDomain(loc *time.Location) (*domain.DaySchedule, error) {
	date, err := time.ParseInLocation(dateLayout, rec.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid mirrored date: %w", err)
	}

	var blocks []domain.Block
	for _, b := range rec.Blocks {
		blocks = append(blocks, domain.Block{
			Start:           domain.ParseClock(b.Start),
			DurationMinutes: b.DurationMinutes,
			Title:           b.Title,
			Kind:            domain.BlockKind(b.Kind),
			TaskID:          b.TaskID,
		})
	}

	return domain.RehydrateDaySchedule(
		sharedDomain.RehydrateBaseEntity(rec.ID, rec.CreatedAt, rec.UpdatedAt),
		date,
		rec.Content,
		blocks,
		rec.Confirmed,
		rec.Notes,
	), nil
}
