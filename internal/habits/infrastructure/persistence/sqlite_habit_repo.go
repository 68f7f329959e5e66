// Package persistence holds the habits context's SQLite storage.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lifeflow/internal/habits/domain"
	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
)

const dateLayout = "2006-01-02"

// SQLiteHabitRepository persists habits and their logs in SQLite.
type SQLiteHabitRepository struct {
	db *sql.DB
}

// NewSQLiteHabitRepository creates a SQLiteHabitRepository.
func NewSQLiteHabitRepository(db *sql.DB) *SQLiteHabitRepository {
	return &SQLiteHabitRepository{db: db}
}

// FindByID returns the habit, or nil when absent.
func (r *SQLiteHabitRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, icon, frequency, created_at, updated_at
		FROM habits
		WHERE id = ?`, id.String())

	habit, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return habit, err
}

// FindAll returns all habits, oldest first.
func (r *SQLiteHabitRepository) FindAll(ctx context.Context) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, frequency, created_at, updated_at
		FROM habits
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	return habits, rows.Err()
}

// Save upserts the habit.
func (r *SQLiteHabitRepository) Save(ctx context.Context, habit *domain.Habit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, icon, frequency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			frequency = excluded.frequency,
			updated_at = excluded.updated_at`,
		habit.ID().String(),
		habit.Name,
		habit.Icon,
		string(habit.Frequency),
		habit.CreatedAt().UTC().Format(time.RFC3339),
		habit.UpdatedAt().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	return nil
}

// Delete removes the habit. Logs are intentionally left behind.
func (r *SQLiteHabitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}

// FindLog returns the log for a habit and date, or nil when absent.
func (r *SQLiteHabitRepository) FindLog(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.HabitLog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT completed
		FROM habit_logs
		WHERE habit_id = ? AND log_date = ?`,
		habitID.String(), date.Format(dateLayout))

	var completed int64
	if err := row.Scan(&completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load habit log: %w", err)
	}
	return &domain.HabitLog{HabitID: habitID, Date: date, Completed: completed != 0}, nil
}

// LogsForDate returns all logs on a date, keyed by habit ID.
func (r *SQLiteHabitRepository) LogsForDate(ctx context.Context, date time.Time) (map[uuid.UUID]domain.HabitLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT habit_id, completed
		FROM habit_logs
		WHERE log_date = ?`, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query habit logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[uuid.UUID]domain.HabitLog)
	for rows.Next() {
		var (
			idStr     string
			completed int64
		)
		if err := rows.Scan(&idStr, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		habitID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid habit id in log: %w", err)
		}
		logs[habitID] = domain.HabitLog{HabitID: habitID, Date: date, Completed: completed != 0}
	}
	return logs, rows.Err()
}

// SaveLog upserts the log for (habit, date).
func (r *SQLiteHabitRepository) SaveLog(ctx context.Context, log domain.HabitLog) error {
	completed := int64(0)
	if log.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_logs (habit_id, log_date, completed)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id, log_date) DO UPDATE SET
			completed = excluded.completed`,
		log.HabitID.String(), log.DateKey(), completed)
	if err != nil {
		return fmt.Errorf("failed to save habit log: %w", err)
	}
	return nil
}

func scanHabit(row interface{ Scan(dest ...any) error }) (*domain.Habit, error) {
	var (
		idStr, name, icon, frequency string
		createdAtStr, updatedAtStr   string
	)
	if err := row.Scan(&idStr, &name, &icon, &frequency, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan habit: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid habit id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	return domain.RehydrateHabit(
		sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		name, icon, domain.Frequency(frequency),
	), nil
}
