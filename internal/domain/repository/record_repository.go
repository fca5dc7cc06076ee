package repository

import (
	"context"
	"errors"

	"smartcity/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when no record matches the lookup key.
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository defines the generic record store used by every non-auth
// collection of the platform. Records are opaque to this service; the account
// subsystem never calls into this interface.
type RecordRepository interface {
	// List returns all records of a kind, newest first.
	List(ctx context.Context, kind string) ([]*entity.Record, error)

	// FindByID retrieves a single record of a kind by its unique ID.
	FindByID(ctx context.Context, kind string, id uuid.UUID) (*entity.Record, error)

	// Create persists a new record and fills in its assigned identity and timestamps.
	Create(ctx context.Context, record *entity.Record) error

	// Update replaces the payload of an existing record.
	Update(ctx context.Context, record *entity.Record) error

	// Delete removes a record of a kind by its unique ID.
	Delete(ctx context.Context, kind string, id uuid.UUID) error
}
