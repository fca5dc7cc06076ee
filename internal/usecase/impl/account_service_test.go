package impl

import (
	"context"
	"testing"
	"time"

	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	"smartcity/internal/domain/repository"
	mockRepo "smartcity/internal/mocks/repository"
	mockSvc "smartcity/internal/mocks/service"
	"smartcity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockCredentialHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	}

	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = accountID
					account.CreatedAt = time.Now()
					account.UpdatedAt = account.CreatedAt
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, accountID, output.Account.ID)
	assert.Equal(t, input.Username, output.Account.Username)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.False(t, output.Account.CreatedAt.IsZero())
}

func TestAccountService_Signup_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

// A concurrent signup can slip past the existence pre-checks; the insert
// then fails on the unique constraint and must still surface as the taken error.
func TestAccountService_Signup_UsernameConflictOnInsert(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(repository.ErrUsernameConflict)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Signup_EmailConflictOnInsert(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(repository.ErrEmailConflict)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Signup_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt: cost out of range"))

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "pw",
	}

	storedAccount := &entity.Account{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		CredentialHash: "hashed_password",
		CreatedAt:      time.Now().Add(-time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedAccount, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, storedAccount.CredentialHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, storedAccount.ID, output.Account.ID)
	assert.Equal(t, storedAccount.Username, output.Account.Username)
	assert.Equal(t, storedAccount.Email, output.Account.Email)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "pw",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	}

	storedAccount := &entity.Account{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		CredentialHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedAccount, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, storedAccount.CredentialHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
