package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	mockRepo "notekeeper/internal/mocks/repository"
	mockSvc "notekeeper/internal/mocks/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func testClaim(userID int64) entity.IdentityClaim {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return entity.IdentityClaim{UserID: userID, IssuedAt: issued, ExpiresAt: issued.Add(time.Hour)}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.SignupInput{Name: "A", Email: "a@x.com", Password: "pw"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = 1
		}).
		Return(nil)
	fx.tokenService.EXPECT().NewClaim(int64(1)).Return(testClaim(1))
	fx.tokenService.EXPECT().Issue(testClaim(1)).Return("signed.token.value", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.User.ID)
	assert.Equal(t, "a@x.com", output.User.Email)
	assert.Empty(t, output.User.PasswordHash)
	assert.Equal(t, "signed.token.value", output.Token)
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	inputs := map[string]usecase.SignupInput{
		"no name":     {Email: "a@x.com", Password: "pw"},
		"no email":    {Name: "A", Password: "pw"},
		"no password": {Name: "A", Email: "a@x.com"},
		"blank email": {Name: "A", Email: "   ", Password: "pw"},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			// No expectations: the store must not be touched.
			fx := createTestAccountService(t)

			output, err := fx.service.Signup(context.Background(), input)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: 1, Email: "a@x.com"}, nil)

	output, err := fx.service.Signup(ctx, usecase.SignupInput{Name: "A", Email: "a@x.com", Password: "pw"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestAccountService_Signup_DuplicateEmailNotLogged(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	var logs bytes.Buffer
	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "taken@x.com").Return(&entity.User{ID: 1, Email: "taken@x.com"}, nil)

	_, err := service.Signup(ctx, usecase.SignupInput{Name: "A", Email: "taken@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
	assert.Contains(t, logs.String(), "Signup rejected")
	assert.NotContains(t, logs.String(), "taken@x.com")
}

func TestAccountService_Signup_LostRace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrConflict.WrapMessage("email already registered"))

	output, err := fx.service.Signup(ctx, usecase.SignupInput{Name: "A", Email: "a@x.com", Password: "pw"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestAccountService_Signup_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find user by email")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, storeErr)

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Name: "A", Email: "a@x.com", Password: "pw"})
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestAccountService_Signup_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", domainerrors.ErrPasswordHashFailed.WrapMessage("hash password"))

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Name: "A", Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Signin_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: 3, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.tokenService.EXPECT().NewClaim(int64(3)).Return(testClaim(3))
	fx.tokenService.EXPECT().Issue(testClaim(3)).Return("token-3", nil)

	output, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "token-3", output.Token)
}

func TestAccountService_Signin_WrongPasswordIssuesNoToken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: 3, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)
	// The token service mock has no expectations; any call fails the test.

	output, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "a@x.com", Password: "wrong"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Signin_UnknownAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "ghost@x.com", Password: "pw"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Signin_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Signin(context.Background(), usecase.SigninInput{Email: "a@x.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Signin(context.Background(), usecase.SigninInput{Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Signin_IssueFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: 3, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.tokenService.EXPECT().NewClaim(int64(3)).Return(testClaim(3))
	fx.tokenService.EXPECT().Issue(testClaim(3)).Return("", domainerrors.ErrTokenIssueFailed.WrapMessage("sign token"))

	output, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "a@x.com", Password: "pw"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
