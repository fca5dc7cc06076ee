// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"smartcity/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameConflict is returned when an insert hits the unique constraint
	// on username. The existence pre-check is only a fast path; the constraint
	// is the authority, so a concurrent duplicate signup surfaces here.
	ErrUsernameConflict = errors.New("username already exists")

	// ErrEmailConflict is the email counterpart of ErrUsernameConflict.
	ErrEmailConflict = errors.New("email already exists")

	// ErrConflict is returned for a uniqueness violation that cannot be
	// attributed to a specific key.
	ErrConflict = errors.New("account conflicts with an existing account")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// ExistsByUsername reports whether an account with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByUsername retrieves a single account by username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account and fills in its assigned identity and
	// timestamps. A uniqueness violation is reported as one of the conflict
	// sentinels above, never as a raw database error.
	Create(ctx context.Context, account *entity.Account) error
}
