package db

import (
	"database/sql"
	"fmt"

	"habits-cli/internal/config"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB prepares a SQLite handle for the configured file.
// No connection is opened here; repositories acquire one per operation.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer keeps SQLite free of lock contention
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	return db, nil
}
