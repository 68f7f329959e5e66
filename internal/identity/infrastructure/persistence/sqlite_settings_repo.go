package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
)

// SQLiteSettingsRepository handles persistence for user preferences using SQLite.
// Preferences are a single row; absence means defaults.
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// NewSQLiteSettingsRepository creates a new SQLiteSettingsRepository.
func NewSQLiteSettingsRepository(db *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{db: db}
}

// Load returns the stored preferences, or defaults when none are stored.
func (r *SQLiteSettingsRepository) Load(ctx context.Context) (settings.Preferences, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT wake_time, bed_time, max_focus_minutes, break_minutes, personal_notes, gemini_api_key
		FROM user_settings WHERE id = 1`)

	prefs := settings.DefaultPreferences()
	err := row.Scan(
		&prefs.UsualWakeTime,
		&prefs.UsualBedTime,
		&prefs.MaxFocusMinutes,
		&prefs.BreakMinutes,
		&prefs.PersonalNotes,
		&prefs.GeminiAPIKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.DefaultPreferences(), nil
		}
		return settings.Preferences{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return prefs, nil
}

// Save upserts the stored preferences.
func (r *SQLiteSettingsRepository) Save(ctx context.Context, prefs settings.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_settings (id, wake_time, bed_time, max_focus_minutes, break_minutes, personal_notes, gemini_api_key, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			wake_time = excluded.wake_time,
			bed_time = excluded.bed_time,
			max_focus_minutes = excluded.max_focus_minutes,
			break_minutes = excluded.break_minutes,
			personal_notes = excluded.personal_notes,
			gemini_api_key = excluded.gemini_api_key,
			updated_at = excluded.updated_at`,
		prefs.UsualWakeTime,
		prefs.UsualBedTime,
		prefs.MaxFocusMinutes,
		prefs.BreakMinutes,
		prefs.PersonalNotes,
		prefs.GeminiAPIKey,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
