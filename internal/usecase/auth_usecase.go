// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a staff member to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to change an account's password.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64 // Token lifetime in seconds.
	Account     *entity.Account
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login authenticates a username/password pair and issues an access token.
	// Wrong passwords advance the account's lockout state; too many in a row
	// lock the account for the configured duration.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Verify validates an access token and resolves it to the live account
	// row. Role and active status always come from storage, never from the
	// token's claims.
	Verify(ctx context.Context, token string) (*entity.Account, error)

	// ChangePassword replaces the caller's password after re-checking the
	// current one and enforcing the strength policy on the new one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
