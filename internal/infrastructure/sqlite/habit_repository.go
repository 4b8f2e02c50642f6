package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS habits (
		name        TEXT NOT NULL,
		periodicity TEXT NOT NULL,
		duration    TEXT NOT NULL
	)
`

type habitRepository struct {
	db   *sql.DB
	path string
}

// NewHabitRepository creates a new SQLite habit repository.
// path is the database file, used to tell whether the store exists yet.
func NewHabitRepository(db *sql.DB, path string) repository.HabitRepository {
	return &habitRepository{db: db, path: path}
}

// conn acquires a connection for the duration of one operation
func (r *habitRepository) conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite connection: %w: %v", repository.ErrPersistenceUnavailable, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to reach sqlite database: %w: %v", repository.ErrPersistenceUnavailable, err)
	}

	// The file is only read on first query, so a file that is not a database passes Ping
	var schemaVersion int
	if err := conn.QueryRowContext(ctx, `PRAGMA schema_version`).Scan(&schemaVersion); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read sqlite database: %w: %v", repository.ErrPersistenceUnavailable, err)
	}

	return conn, nil
}

func (r *habitRepository) Insert(ctx context.Context, record *entity.HabitRecord) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create habits table: %w", err)
	}

	query := `INSERT INTO habits (name, periodicity, duration) VALUES (?, ?, ?)`
	if _, err := conn.ExecContext(ctx, query, record.Name, string(record.Periodicity), record.Duration); err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	return nil
}

func (r *habitRepository) ListAll(ctx context.Context) ([]*entity.HabitRecord, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var tableName string
	err = conn.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'habits'`,
	).Scan(&tableName)
	if errors.Is(err, sql.ErrNoRows) {
		return []*entity.HabitRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect schema: %w", err)
	}

	rows, err := conn.QueryContext(ctx, `SELECT name, periodicity, duration FROM habits ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	records := []*entity.HabitRecord{}
	for rows.Next() {
		record := &entity.HabitRecord{}
		if err := rows.Scan(&record.Name, &record.Periodicity, &record.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return records, nil
}

func (r *habitRepository) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat database file: %w: %v", repository.ErrPersistenceUnavailable, err)
}
