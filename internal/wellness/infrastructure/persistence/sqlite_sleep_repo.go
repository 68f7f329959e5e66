// Package persistence holds the wellness context's SQLite storage.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/felixgeelhaar/lifeflow/internal/wellness/domain"
)

const dateLayout = "2006-01-02"

// SQLiteSleepRepository persists sleep records in SQLite, one row per
// wake-up date.
type SQLiteSleepRepository struct {
	db *sql.DB
}

// NewSQLiteSleepRepository creates a SQLiteSleepRepository.
func NewSQLiteSleepRepository(db *sql.DB) *SQLiteSleepRepository {
	return &SQLiteSleepRepository{db: db}
}

// FindByDate returns the record for a date, or nil when absent.
func (r *SQLiteSleepRepository) FindByDate(ctx context.Context, date time.Time) (*domain.SleepRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, record_date, bed_time, wake_time, quality, notes, created_at, updated_at
		FROM sleep_records
		WHERE record_date = ?`, date.Format(dateLayout))

	record, err := scanSleepRecord(row, date.Location())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

// FindRange returns records with dates in [from, to], oldest first.
func (r *SQLiteSleepRepository) FindRange(ctx context.Context, from, to time.Time) ([]*domain.SleepRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, record_date, bed_time, wake_time, quality, notes, created_at, updated_at
		FROM sleep_records
		WHERE record_date BETWEEN ? AND ?
		ORDER BY record_date`,
		from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query sleep records: %w", err)
	}
	defer rows.Close()

	var records []*domain.SleepRecord
	for rows.Next() {
		record, err := scanSleepRecord(rows, from.Location())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Save upserts the record by date.
func (r *SQLiteSleepRepository) Save(ctx context.Context, record *domain.SleepRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sleep_records (id, record_date, bed_time, wake_time, quality, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(record_date) DO UPDATE SET
			bed_time = excluded.bed_time,
			wake_time = excluded.wake_time,
			quality = excluded.quality,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		record.ID().String(),
		record.DateKey(),
		nullIfEmpty(record.BedTime),
		nullIfEmpty(record.WakeTime),
		record.Quality,
		record.Notes,
		record.CreatedAt().UTC().Format(time.RFC3339),
		record.UpdatedAt().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save sleep record: %w", err)
	}
	return nil
}

// Delete removes the record for a date.
func (r *SQLiteSleepRepository) Delete(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sleep_records WHERE record_date = ?`,
		date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("failed to delete sleep record: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSleepRecord(row rowScanner, loc *time.Location) (*domain.SleepRecord, error) {
	var (
		idStr, dateStr             string
		bedTime, wakeTime          sql.NullString
		quality                    int
		notes                      string
		createdAtStr, updatedAtStr string
	)
	if err := row.Scan(&idStr, &dateStr, &bedTime, &wakeTime, &quality, &notes, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan sleep record: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid sleep record id: %w", err)
	}
	date, err := time.ParseInLocation(dateLayout, dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid record_date: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	return domain.RehydrateSleepRecord(
		sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		date,
		bedTime.String,
		wakeTime.String,
		quality,
		notes,
	), nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
