// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/domain/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and issues its first token.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and password are required")
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Signup rejected, email already registered")

		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("signup")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.ErrDuplicateAccount.WrapMessage("signup")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account created", slog.Int64("userID", user.ID))

	return &usecase.SignupOutput{
		User:  user.Scrubbed(),
		Token: token,
	}, nil
}

// Signin verifies credentials and issues a token. A failed check returns only the error.
func (srv *accountService) Signin(ctx context.Context, input usecase.SigninInput) (*usecase.SigninOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("signin")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Signin rejected, password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin")
	}

	token, err := srv.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Signin succeeded", slog.Int64("userID", user.ID))

	return &usecase.SigninOutput{Token: token}, nil
}

func (srv *accountService) issueToken(userID int64) (string, error) {
	token, err := srv.tokenService.Issue(srv.tokenService.NewClaim(userID))
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}
