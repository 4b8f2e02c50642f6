package postgres

import (
	"context"
	"fmt"

	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seq only orders rows by insertion; it is never exposed on the record
const createTableQuery = `
	CREATE TABLE IF NOT EXISTS habits (
		seq         BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		periodicity TEXT NOT NULL,
		duration    TEXT NOT NULL
	)
`

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

// acquire takes a pooled connection for the duration of one operation
func (r *habitRepository) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w: %v", repository.ErrPersistenceUnavailable, err)
	}
	return conn, nil
}

func (r *habitRepository) Insert(ctx context.Context, record *entity.HabitRecord) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create habits table: %w", err)
	}

	query := `
		INSERT INTO habits (name, periodicity, duration)
		VALUES ($1, $2, $3)
	`

	_, err = conn.Exec(ctx, query, record.Name, string(record.Periodicity), record.Duration)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	return nil
}

func (r *habitRepository) ListAll(ctx context.Context) ([]*entity.HabitRecord, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	exists, err := tableExists(ctx, conn)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []*entity.HabitRecord{}, nil
	}

	query := `
		SELECT name, periodicity, duration
		FROM habits
		ORDER BY seq ASC
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	records := []*entity.HabitRecord{}
	for rows.Next() {
		var name, periodicity, duration string
		if err := rows.Scan(&name, &periodicity, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		records = append(records, &entity.HabitRecord{
			Name:        name,
			Periodicity: entity.Periodicity(periodicity),
			Duration:    duration,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return records, nil
}

func (r *habitRepository) Exists(ctx context.Context) (bool, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	return tableExists(ctx, conn)
}

func tableExists(ctx context.Context, conn *pgxpool.Conn) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `SELECT to_regclass('habits') IS NOT NULL`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return exists, nil
}
