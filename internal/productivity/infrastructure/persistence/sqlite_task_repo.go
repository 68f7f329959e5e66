package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/value_objects"
	"github.com/google/uuid"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save persists a task, inserting or updating as needed.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	var deadline sql.NullString
	if t.Deadline() != nil {
		deadline = sql.NullString{String: t.Deadline().Format("2006-01-02"), Valid: true}
	}
	var completedAt sql.NullString
	if t.CompletedAt() != nil {
		completedAt = sql.NullString{String: t.CompletedAt().Format(time.RFC3339), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			estimate_minutes = excluded.estimate_minutes,
			deadline = excluded.deadline,
			priority = excluded.priority,
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`,
		t.ID().String(),
		t.Title(),
		t.Description(),
		t.EstimateMinutes(),
		deadline,
		t.Priority().String(),
		boolToInt64(t.IsCompleted()),
		completedAt,
		t.CreatedAt().Format(time.RFC3339),
		t.UpdatedAt().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID. Returns nil when absent.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// FindAll returns every task in creation order.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks ORDER BY created_at`)
}

// FindPending returns incomplete tasks in creation order.
func (r *SQLiteTaskRepository) FindPending(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks WHERE completed = 0 ORDER BY created_at`)
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepository) query(ctx context.Context, q string) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		idStr, title, description, priorityStr string
		estimateMinutes                        int
		deadline, completedAt                  sql.NullString
		completed                              int64
		createdAtStr, updatedAtStr             string
	)
	if err := row.Scan(&idStr, &title, &description, &estimateMinutes, &deadline, &priorityStr, &completed, &completedAt, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q: %w", idStr, err)
	}
	priority, err := value_objects.ParsePriority(priorityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid task priority %q: %w", priorityStr, err)
	}

	var deadlinePtr *time.Time
	if deadline.Valid {
		d, err := time.Parse("2006-01-02", deadline.String)
		if err != nil {
			return nil, fmt.Errorf("invalid task deadline %q: %w", deadline.String, err)
		}
		deadlinePtr = &d
	}
	var completedAtPtr *time.Time
	if completedAt.Valid {
		c, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid completion timestamp %q: %w", completedAt.String, err)
		}
		completedAtPtr = &c
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, err
	}

	return task.Rehydrate(
		id, title, description, estimateMinutes, deadlinePtr,
		priority, completed != 0, completedAtPtr, createdAt, updatedAt,
	), nil
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
