package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors returned by ValidateToken so callers can distinguish an
// expired token from a malformed or tampered one.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims for the access token. The embedded account
// id is the only claim treated as authoritative downstream; username and role
// are informational and re-read from the account row on every verification.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed, time-limited access token for an account.
	GenerateToken(accountID uuid.UUID, username, role string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims. Returns ErrTokenExpired or ErrTokenInvalid on failure.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
