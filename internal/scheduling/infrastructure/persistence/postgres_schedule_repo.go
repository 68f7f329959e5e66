package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
)

// PostgresScheduleRepository persists day schedules in PostgreSQL.
type PostgresScheduleRepository struct {
	db *sql.DB
}

// NewPostgresScheduleRepository creates a PostgresScheduleRepository.
func NewPostgresScheduleRepository(db *sql.DB) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{db: db}
}

// Load returns the schedule for a date, or nil when absent.
func (r *PostgresScheduleRepository) Load(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	key := date.Format(dateLayout)

	row := r.db.QueryRowContext(ctx, `
		SELECT id, content, confirmed, notes, created_at, updated_at
		FROM day_schedules
		WHERE schedule_date = $1`, key)

	var (
		id                   uuid.UUID
		content, notes       string
		confirmed            bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &content, &confirmed, &notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	blocks, err := r.loadBlocks(ctx, key)
	if err != nil {
		return nil, err
	}

	parsedDate, err := time.ParseInLocation(dateLayout, key, date.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid schedule_date: %w", err)
	}

	return domain.RehydrateDaySchedule(
		sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		parsedDate,
		content,
		blocks,
		confirmed,
		notes,
	), nil
}

func (r *PostgresScheduleRepository) loadBlocks(ctx context.Context, key string) ([]domain.Block, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT start_time, duration_minutes, title, block_kind, task_id
		FROM schedule_blocks
		WHERE schedule_date = $1
		ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.Block
	for rows.Next() {
		var (
			startStr, title, kind string
			duration              int
			taskID                *uuid.UUID
		)
		if err := rows.Scan(&startStr, &duration, &title, &kind, &taskID); err != nil {
			return nil, fmt.Errorf("failed to scan schedule block: %w", err)
		}
		blocks = append(blocks, domain.Block{
			Start:           domain.ParseClock(startStr),
			DurationMinutes: duration,
			Title:           title,
			Kind:            domain.BlockKind(kind),
			TaskID:          taskID,
		})
	}
	return blocks, rows.Err()
}

// Save upserts the schedule and rewrites its block list.
func (r *PostgresScheduleRepository) Save(ctx context.Context, schedule *domain.DaySchedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	key := schedule.DateKey()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO day_schedules (schedule_date, id, content, confirmed, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (schedule_date) DO UPDATE SET
			content = EXCLUDED.content,
			confirmed = EXCLUDED.confirmed,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at`,
		key,
		schedule.ID(),
		schedule.Content(),
		schedule.IsConfirmed(),
		schedule.Notes(),
		schedule.CreatedAt().UTC(),
		schedule.UpdatedAt().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_blocks WHERE schedule_date = $1`, key); err != nil {
		return fmt.Errorf("failed to clear schedule blocks: %w", err)
	}
	for i, block := range schedule.Blocks() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_blocks (schedule_date, position, start_time, duration_minutes, title, block_kind, task_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			key, i, block.Start.String(), block.DurationMinutes, block.Title, string(block.Kind), block.TaskID,
		)
		if err != nil {
			return fmt.Errorf("failed to save schedule block: %w", err)
		}
	}

	return tx.Commit()
}

// Delete removes the schedule for a date. Blocks cascade.
func (r *PostgresScheduleRepository) Delete(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM day_schedules WHERE schedule_date = $1`,
		date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}
