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

const dateLayout = "2006-01-02"

// SQLiteScheduleRepository persists day schedules in SQLite, keyed by date.
type SQLiteScheduleRepository struct {
	db *sql.DB
}

// NewSQLiteScheduleRepository creates a SQLiteScheduleRepository.
func NewSQLiteScheduleRepository(db *sql.DB) *SQLiteScheduleRepository {
	return &SQLiteScheduleRepository{db: db}
}

// Load returns the schedule for a date, or nil when absent.
func (r *SQLiteScheduleRepository) Load(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	key := date.Format(dateLayout)

	row := r.db.QueryRowContext(ctx, `
		SELECT id, content, confirmed, notes, created_at, updated_at
		FROM day_schedules
		WHERE schedule_date = ?`, key)

	var (
		idStr, content, notes      string
		confirmed                  int64
		createdAtStr, updatedAtStr string
	)
	if err := row.Scan(&idStr, &content, &confirmed, &notes, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
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
		confirmed != 0,
		notes,
	), nil
}

func (r *SQLiteScheduleRepository) loadBlocks(ctx context.Context, key string) ([]domain.Block, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT start_time, duration_minutes, title, block_kind, task_id
		FROM schedule_blocks
		WHERE schedule_date = ?
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
			taskIDStr             sql.NullString
		)
		if err := rows.Scan(&startStr, &duration, &title, &kind, &taskIDStr); err != nil {
			return nil, fmt.Errorf("failed to scan schedule block: %w", err)
		}
		block := domain.Block{
			Start:           domain.ParseClock(startStr),
			DurationMinutes: duration,
			Title:           title,
			Kind:            domain.BlockKind(kind),
		}
		if taskIDStr.Valid {
			if taskID, err := uuid.Parse(taskIDStr.String); err == nil {
				block.TaskID = &taskID
			}
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

// Save upserts the schedule and rewrites its block list.
func (r *SQLiteScheduleRepository) Save(ctx context.Context, schedule *domain.DaySchedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	key := schedule.DateKey()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO day_schedules (schedule_date, id, content, confirmed, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(schedule_date) DO UPDATE SET
			content = excluded.content,
			confirmed = excluded.confirmed,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		key,
		schedule.ID().String(),
		schedule.Content(),
		boolToInt64(schedule.IsConfirmed()),
		schedule.Notes(),
		schedule.CreatedAt().UTC().Format(time.RFC3339),
		schedule.UpdatedAt().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_blocks WHERE schedule_date = ?`, key); err != nil {
		return fmt.Errorf("failed to clear schedule blocks: %w", err)
	}
	for i, block := range schedule.Blocks() {
		var taskID any
		if block.TaskID != nil {
			taskID = block.TaskID.String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_blocks (schedule_date, position, start_time, duration_minutes, title, block_kind, task_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			key, i, block.Start.String(), block.DurationMinutes, block.Title, string(block.Kind), taskID,
		)
		if err != nil {
			return fmt.Errorf("failed to save schedule block: %w", err)
		}
	}

	return tx.Commit()
}

// Delete removes the schedule for a date. Blocks cascade.
func (r *SQLiteScheduleRepository) Delete(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM day_schedules WHERE schedule_date = ?`,
		date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
