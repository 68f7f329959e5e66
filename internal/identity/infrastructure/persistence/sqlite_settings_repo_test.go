package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/migrations"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.RunSQLiteMigrations(ctx, db))
	return db
}

func TestSettingsLoadDefaultsWhenEmpty(t *testing.T) {
	repo := NewSQLiteSettingsRepository(newTestDB(t))

	prefs, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, settings.DefaultPreferences(), prefs)
	assert.False(t, prefs.HasCredential())
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepository(newTestDB(t))
	ctx := context.Background()

	prefs := settings.Preferences{
		UsualWakeTime:   "06:30",
		UsualBedTime:    "22:00",
		MaxFocusMinutes: 90,
		BreakMinutes:    10,
		PersonalNotes:   "gym on tuesdays",
		GeminiAPIKey:    "test-key",
	}
	require.NoError(t, repo.Save(ctx, prefs))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
	assert.True(t, loaded.HasCredential())
}

func TestSettingsSaveIsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSettingsRepository(db)
	ctx := context.Background()

	first := settings.DefaultPreferences()
	first.UsualWakeTime = "07:00"
	require.NoError(t, repo.Save(ctx, first))

	second := settings.DefaultPreferences()
	second.UsualWakeTime = "09:00"
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "09:00", loaded.UsualWakeTime)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_settings`).Scan(&count))
	assert.Equal(t, 1, count)
}
