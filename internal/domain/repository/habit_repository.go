package repository

import (
	"context"
	"errors"
	"habits-cli/internal/domain/entity"
)

// ErrPersistenceUnavailable is returned when the backing store cannot be reached
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// HabitRepository defines the interface for habit record persistence.
// Implementations acquire a connection per call and release it before returning.
type HabitRepository interface {
	// Insert appends a habit record, creating the habits table if needed
	Insert(ctx context.Context, record *entity.HabitRecord) error

	// ListAll retrieves every habit record in insertion order
	ListAll(ctx context.Context) ([]*entity.HabitRecord, error)

	// Exists reports whether the store has already been created
	Exists(ctx context.Context) (bool, error)
}
