package usecase

import (
	"context"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput defines the data required to create a new staff account.
type CreateAccountInput struct {
	Username string
	Password string
	FullName string
	Role     entity.Role
}

// AccountUsecase defines the interface for account administration operations.
// All of these are admin-only; the delivery layer enforces the role check.
type AccountUsecase interface {
	// CreateAccount provisions a new staff account with a hashed password.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.Account, error)

	// ListAccounts returns all staff accounts ordered by creation time.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// SetAccountActive activates or deactivates an account. Deactivated
	// accounts fail every authentication attempt until reactivated.
	SetAccountActive(ctx context.Context, id uuid.UUID, active bool) error
}
