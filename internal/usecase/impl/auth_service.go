// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"compssa/config"
	deliverycontext "compssa/internal/delivery/context"
	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/domain/service"
	"compssa/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxFailedLogins = 5
	defaultLockoutDuration = 2 * time.Hour
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	maxFailedLogins int
	lockoutDuration time.Duration
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxFailedLogins := defaultMaxFailedLogins
	lockoutDuration := defaultLockoutDuration
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MaxFailedLogins > 0 {
			maxFailedLogins = params.Config.Auth.MaxFailedLogins
		}
		if params.Config.Auth.LockoutDuration > 0 {
			lockoutDuration = params.Config.Auth.LockoutDuration
		}
	}

	return &authService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		maxFailedLogins: maxFailedLogins,
		lockoutDuration: lockoutDuration,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a username/password pair. The password check runs
// outside the transaction because bcrypt is CPU-bound; the lockout counters
// are then updated under a row lock, so concurrent attempts against the same
// account serialize and every wrong password is counted exactly once.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Unknown usernames get the same answer as wrong passwords.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !account.IsActive {
		srv.log(ctx).Warn("Login attempt on deactivated account", slog.String("username", input.Username))

		return nil, domainerrors.ErrAccountDeactivated
	}

	if account.IsLocked(time.Now()) {
		return nil, domainerrors.NewAccountLockedError(account.LockRemaining(time.Now()))
	}

	passwordOK := srv.hasher.Check(input.Password, account.PasswordHash)

	var loggedIn *entity.Account
	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Re-read under the row lock: the counters may have moved since the
		// unlocked read above.
		current, err := accountRepo.FindByIDForUpdate(ctx, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock account row")
		}

		now := time.Now()

		if !current.IsActive {
			return domainerrors.ErrAccountDeactivated
		}
		if current.IsLocked(now) {
			// A concurrent attempt locked the account while we were hashing.
			return domainerrors.NewAccountLockedError(current.LockRemaining(now))
		}

		if !passwordOK {
			current.RecordFailedAttempt(now, srv.maxFailedLogins, srv.lockoutDuration)
			if err := accountRepo.UpdateLockout(ctx, current); err != nil {
				return errors.Wrap(err, "failed to persist failed attempt")
			}
			if current.IsLocked(now) {
				srv.log(ctx).Warn("Account locked after repeated failures",
					slog.String("username", current.Username),
					slog.Int("failedAttempts", current.FailedLoginCount),
				)

				return domainerrors.NewAccountLockedError(current.LockRemaining(now))
			}

			return domainerrors.ErrInvalidCredentials
		}

		current.RecordSuccessfulLogin(now)
		if err := accountRepo.UpdateLockout(ctx, current); err != nil {
			// Never hand out a token while the counter state is unknown.
			return errors.Wrap(err, "failed to persist successful login")
		}

		loggedIn = current

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	token, err := srv.tokenService.GenerateToken(loggedIn.ID, loggedIn.Username, loggedIn.Role.String())
	if err != nil {
		return nil, domainerrors.ErrAuthFailed.WrapMessage("failed to generate access token")
	}

	srv.log(ctx).Info("Login successful", slog.String("username", loggedIn.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Account:     loggedIn,
	}, nil
}

// Verify validates an access token and resolves it against the live account
// row. Deactivation and lockout take effect immediately, without waiting for
// outstanding tokens to expire.
func (srv *authService) Verify(ctx context.Context, token string) (*entity.Account, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve token account")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}
	if account.IsLocked(time.Now()) {
		return nil, domainerrors.NewAccountLockedError(account.LockRemaining(time.Now()))
	}

	return account, nil
}

// ChangePassword replaces the caller's password after re-checking the current one.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to load account")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := srv.accountRepo.UpdatePasswordHash(ctx, account.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}

	srv.log(ctx).Info("Password changed", slog.String("username", account.Username))

	return nil
}
