package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/infra/auth"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccountService(repo *fakeAccountRepo) *accountService {
	return &accountService{
		accountRepo: repo,
		hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestCreateAccount_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := newTestAccountService(repo)

	account, err := srv.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Username: "  Clerk2  ",
		Password: "StrongPass123!",
		FullName: "Yaw Boateng",
		Role:     entity.RoleClerk,
	})
	require.NoError(t, err)
	// Usernames are normalized to lower case.
	assert.Equal(t, "clerk2", account.Username)
	assert.True(t, account.IsActive)
	assert.NotEqual(t, "StrongPass123!", account.PasswordHash)
}

func TestCreateAccount_InvalidRole(t *testing.T) {
	srv := newTestAccountService(newFakeAccountRepo())

	_, err := srv.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Username: "clerk2",
		Password: "StrongPass123!",
		FullName: "Yaw Boateng",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCreateAccount_WeakPassword(t *testing.T) {
	srv := newTestAccountService(newFakeAccountRepo())

	_, err := srv.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Username: "clerk2",
		Password: "weak",
		FullName: "Yaw Boateng",
		Role:     entity.RoleClerk,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestSetAccountActive(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := newTestAccountService(repo)

	account, err := srv.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Username: "clerk2",
		Password: "StrongPass123!",
		FullName: "Yaw Boateng",
		Role:     entity.RoleClerk,
	})
	require.NoError(t, err)

	require.NoError(t, srv.SetAccountActive(context.Background(), account.ID, false))
	assert.False(t, repo.get(account.ID).IsActive)

	require.NoError(t, srv.SetAccountActive(context.Background(), account.ID, true))
	assert.True(t, repo.get(account.ID).IsActive)
}

func TestSetAccountActive_NotFound(t *testing.T) {
	srv := newTestAccountService(newFakeAccountRepo())

	err := srv.SetAccountActive(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
