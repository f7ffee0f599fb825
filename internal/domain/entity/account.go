// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a stored credential record: the unit of the credential store.
// Lockout fields are mutated exclusively by the authenticator; nothing in the
// delivery layer writes them directly.
type Account struct {
	ID               uuid.UUID  // The unique identifier for the account.
	Username         string     // Login identifier, unique and immutable once created.
	PasswordHash     string     // bcrypt hash of the password; the plaintext is never stored.
	FullName         string     // Display name of the staff member.
	Role             Role       // Governs downstream authorization (admin or clerk).
	IsActive         bool       // Deactivated accounts never authenticate, even with correct credentials.
	FailedLoginCount int        // Consecutive wrong-password attempts in the current lockout cycle.
	LockedUntil      *time.Time // When set and in the future, authentication is refused outright.
	LastLoginAt      *time.Time // Timestamp of the most recent successful login.
	CreatedAt        time.Time  // Timestamp of when this account was created.
	UpdatedAt        time.Time  // Timestamp of the last modification to this account.
}

// IsLocked reports whether the account is inside an active lockout cycle at
// the given instant. The expiry instant itself counts as unlocked.
func (a *Account) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// LockRemaining returns how long until an active lockout expires. Zero when
// the account is not locked.
func (a *Account) LockRemaining(now time.Time) time.Duration {
	if !a.IsLocked(now) {
		return 0
	}

	return a.LockedUntil.Sub(now)
}

// RecordFailedAttempt advances the lockout state machine for one wrong-password
// attempt. A stale, already-expired lock starts a fresh cycle: the counter resets
// to 1 (counting this attempt) and the lock is cleared. Otherwise the counter is
// incremented and, on reaching the threshold, the account is locked for lockFor
// from this attempt.
func (a *Account) RecordFailedAttempt(now time.Time, threshold int, lockFor time.Duration) {
	if a.LockedUntil != nil && !a.LockedUntil.After(now) {
		a.FailedLoginCount = 1
		a.LockedUntil = nil

		return
	}

	a.FailedLoginCount++
	if a.FailedLoginCount >= threshold && !a.IsLocked(now) {
		lockedUntil := now.Add(lockFor)
		a.LockedUntil = &lockedUntil
	}
}

// RecordSuccessfulLogin unconditionally clears the lockout counters and stamps
// the last-login time. Callers must have already rejected an actively locked
// account before verifying credentials.
func (a *Account) RecordSuccessfulLogin(now time.Time) {
	a.FailedLoginCount = 0
	a.LockedUntil = nil
	lastLogin := now
	a.LastLoginAt = &lastLogin
}
