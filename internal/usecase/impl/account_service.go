// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "smartcity/internal/delivery/context"
	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	"smartcity/internal/domain/repository"
	"smartcity/internal/domain/service"
	"smartcity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.CredentialHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.CredentialHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete account creation process.
// Uniqueness is checked up front as a fast path; the database's unique
// constraints remain authoritative, so a concurrent duplicate insert still
// surfaces as the matching taken error rather than a raw database failure.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username))

	var createdAccount *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		usernameTaken, err := accountRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if usernameTaken {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "signup rejected")
		}

		emailTaken, err := accountRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if emailTaken {
			return errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected")
		}

		credentialHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrCredentialHashFailed, "failed to hash password during signup")
		}

		newAccount := &entity.Account{
			Username:       input.Username,
			Email:          input.Email,
			CredentialHash: credentialHash,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return srv.mapCreateError(err)
		}

		createdAccount = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", createdAccount.ID))

	return &usecase.SignupOutput{Account: entity.NewAccountView(createdAccount)}, nil
}

// mapCreateError attributes an insert failure to the violated uniqueness rule.
func (srv *accountService) mapCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameConflict):
		return errors.Wrap(domainerrors.ErrUsernameTaken, "concurrent signup won the username")
	case errors.Is(err, repository.ErrEmailConflict):
		return errors.Wrap(domainerrors.ErrEmailTaken, "concurrent signup won the email")
	case errors.Is(err, repository.ErrConflict):
		return errors.Wrap(domainerrors.ErrConflict, "account conflicts with an existing one")
	default:
		return errors.Wrap(err, "failed to create account during signup")
	}
}

// Login verifies the submitted credentials and returns the account's sanitized view.
// An unknown username and a wrong password are deliberately indistinguishable.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.loadLoginAccount(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.CredentialHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: entity.NewAccountView(account)}, nil
}

func (srv *accountService) loadLoginAccount(ctx context.Context, username string) (*entity.Account, error) {
	var account *entity.Account

	// Load the account from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByUsername(ctx, username)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find account by username")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login account transaction")
	}

	return account, nil
}
