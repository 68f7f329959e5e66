// Package database opens the backing stores used by lifeflow. SQLite is the
// default single-user store; Postgres is available for shared deployments.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultSQLitePath returns the default location of the lifeflow database.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lifeflow/lifeflow.db"
	}
	return filepath.Join(home, ".lifeflow", "lifeflow.db")
}

// OpenSQLite opens a SQLite database with the pragmas lifeflow needs.
// - journal_mode=WAL: Write-Ahead Logging for better concurrency
// - foreign_keys=ON: Enforce foreign key constraints
// - busy_timeout=5000: Wait 5s on lock instead of failing immediately
// - synchronous=NORMAL: Good balance of safety and speed
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return db, nil
}
