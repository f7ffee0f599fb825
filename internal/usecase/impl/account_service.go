package impl

import (
	"context"
	"log/slog"
	"strings"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/domain/service"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// CreateAccount provisions a new staff account.
func (srv *accountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be admin or clerk")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{
		Username:     username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         input.Role,
		IsActive:     true,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	srv.logger.Info("Account created",
		slog.String("username", account.Username),
		slog.String("role", account.Role.String()),
	)

	return account, nil
}

// ListAccounts returns all staff accounts ordered by creation time.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// SetAccountActive activates or deactivates an account.
func (srv *accountService) SetAccountActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := srv.accountRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to set account active flag")
	}

	srv.logger.Info("Account active flag changed",
		slog.String("accountID", id.String()),
		slog.Bool("active", active),
	)

	return nil
}
