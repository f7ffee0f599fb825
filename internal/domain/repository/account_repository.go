// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account and takes a row-level write lock on it.
	// Only meaningful inside a transaction; the lock is held until commit or rollback.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateLockout persists only the authenticator-owned fields: failed login
	// count, locked-until and last-login timestamps.
	UpdateLockout(ctx context.Context, account *entity.Account) error

	// UpdatePasswordHash replaces the stored password hash for an account.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetActive flips the soft-delete flag on an account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// List retrieves all accounts ordered by creation time.
	List(ctx context.Context) ([]*entity.Account, error)
}
