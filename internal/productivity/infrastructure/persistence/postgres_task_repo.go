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

// PostgresTaskRepository implements task.Repository using PostgreSQL.
type PostgresTaskRepository struct {
	db *sql.DB
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

// Save persists a task, inserting or updating as needed.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			estimate_minutes = EXCLUDED.estimate_minutes,
			deadline = EXCLUDED.deadline,
			priority = EXCLUDED.priority,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at,
			updated_at = EXCLUDED.updated_at`,
		t.ID(),
		t.Title(),
		t.Description(),
		t.EstimateMinutes(),
		t.Deadline(),
		t.Priority().String(),
		t.IsCompleted(),
		t.CompletedAt(),
		t.CreatedAt(),
		t.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID. Returns nil when absent.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks WHERE id = $1`, id)

	t, err := scanPostgresTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// FindAll returns every task in creation order.
func (r *PostgresTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks ORDER BY created_at`)
}

// FindPending returns incomplete tasks in creation order.
func (r *PostgresTaskRepository) FindPending(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, `
		SELECT id, title, description, estimate_minutes, deadline, priority, completed, completed_at, created_at, updated_at
		FROM tasks WHERE completed = FALSE ORDER BY created_at`)
}

// Delete removes a task.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) query(ctx context.Context, q string) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanPostgresTask(row rowScanner) (*task.Task, error) {
	var (
		id                    uuid.UUID
		title, description    string
		estimateMinutes       int
		deadline, completedAt sql.NullTime
		priorityStr           string
		completed             bool
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &title, &description, &estimateMinutes, &deadline, &priorityStr, &completed, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	priority, err := value_objects.ParsePriority(priorityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid task priority %q: %w", priorityStr, err)
	}

	var deadlinePtr, completedAtPtr *time.Time
	if deadline.Valid {
		d := deadline.Time
		deadlinePtr = &d
	}
	if completedAt.Valid {
		c := completedAt.Time
		completedAtPtr = &c
	}

	return task.Rehydrate(
		id, title, description, estimateMinutes, deadlinePtr,
		priority, completed, completedAtPtr, createdAt, updatedAt,
	), nil
}
