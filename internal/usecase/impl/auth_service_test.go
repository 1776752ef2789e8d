package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agora/config"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	domainservice "agora/internal/domain/service"
	mockRepo "agora/internal/mocks/repository"
	mockSvc "agora/internal/mocks/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthClient  *mockSvc.MockOAuthClient
}

func newAuthServiceForTest(t *testing.T, policy *config.PasswordStrengthConfig) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		oauthClient:  mockSvc.NewMockOAuthClient(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.PasswordStrength = policy

	service := NewAuthService(AuthServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		OAuthClient:  m.oauthClient,
		Config:       cfg,
		Logger:       logger,
	})

	return service, m
}

func TestAuthService_Register_Success(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	}

	m.hasher.EXPECT().Hash("Sup3r$ecret").Return("hashed", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "alice@example.com", user.Email)
					require.NotNil(t, user.Username)
					assert.Equal(t, "alice", *user.Username)
					require.NotNil(t, user.PasswordHash)
					assert.Equal(t, "hashed", *user.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	m.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), "alice@example.com").Return("access-token", "refresh-token", nil)
	m.userRepo.EXPECT().SaveRefreshToken(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("*string")).Return(nil)

	output, err := service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "alice@example.com", output.User.Email)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	policy := &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireNumbers:   true,
	}
	service, _ := newAuthServiceForTest(t, policy)

	ctx := context.Background()

	tests := []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"too short", "Ab1"},
		{"no uppercase", "password123"},
		{"no number", "Passwordabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, &usecase.RegisterInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: tt.password,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	}

	m.hasher.EXPECT().Hash("Sup3r$ecret").Return("hashed", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)

			return fn(mockFactory)
		})

	_, err := service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("Sup3r$ecret").Return("", errors.New("bcrypt failure"))

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	hash := "stored-hash"
	user := &entity.User{ID: userID, Email: "alice@example.com", PasswordHash: &hash}

	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("Sup3r$ecret", "stored-hash").Return(true)
	m.tokenService.EXPECT().GenerateTokens(userID, "alice@example.com").Return("access-token", "refresh-token", nil)
	m.userRepo.EXPECT().
		SaveRefreshToken(ctx, userID, mock.AnythingOfType("*string")).
		Run(func(ctx context.Context, userID uuid.UUID, token *string) {
			require.NotNil(t, token)
			assert.Equal(t, "refresh-token", *token)
		}).
		Return(nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Sup3r$ecret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	hash := "stored-hash"
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: &hash}

	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_FederatedOnlyAccount(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	subject := "provider-sub"
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Subject: &subject}

	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginWithProvider_ExistingUser(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	subject := "provider-sub"
	user := &entity.User{ID: userID, Email: "alice@example.com", Subject: &subject}

	m.oauthClient.EXPECT().
		ExchangeCode(ctx, "auth-code", "verifier").
		Return(&domainservice.ProviderToken{AccessToken: "provider-access"}, nil)
	m.oauthClient.EXPECT().
		FetchUserInfo(ctx, "provider-access").
		Return(&domainservice.ProviderIdentity{Subject: "provider-sub", Email: "alice@example.com", Name: "Alice"}, nil)
	m.userRepo.EXPECT().FindBySubject(ctx, "provider-sub").Return(user, nil)
	m.tokenService.EXPECT().GenerateTokens(userID, "alice@example.com").Return("access-token", "refresh-token", nil)
	m.userRepo.EXPECT().SaveRefreshToken(ctx, userID, mock.AnythingOfType("*string")).Return(nil)

	output, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "auth-code", CodeVerifier: "verifier"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_LoginWithProvider_CreatesNewUser(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.oauthClient.EXPECT().
		ExchangeCode(ctx, "auth-code", "verifier").
		Return(&domainservice.ProviderToken{AccessToken: "provider-access"}, nil)
	m.oauthClient.EXPECT().
		FetchUserInfo(ctx, "provider-access").
		Return(&domainservice.ProviderIdentity{Subject: "provider-sub", Email: "new@example.com", Name: "Newcomer"}, nil)
	m.userRepo.EXPECT().FindBySubject(ctx, "provider-sub").Return(nil, repository.ErrUserNotFound)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.Subject)
					assert.Equal(t, "provider-sub", *user.Subject)
					assert.Equal(t, "new@example.com", user.Email)
					assert.Nil(t, user.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	m.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), "new@example.com").Return("access-token", "refresh-token", nil)
	m.userRepo.EXPECT().SaveRefreshToken(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("*string")).Return(nil)

	output, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "auth-code", CodeVerifier: "verifier"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestAuthService_LoginWithProvider_DuplicateKeyRetriesLookup(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	subject := "provider-sub"
	existing := &entity.User{ID: userID, Email: "raced@example.com", Subject: &subject}

	m.oauthClient.EXPECT().
		ExchangeCode(ctx, "auth-code", "verifier").
		Return(&domainservice.ProviderToken{AccessToken: "provider-access"}, nil)
	m.oauthClient.EXPECT().
		FetchUserInfo(ctx, "provider-access").
		Return(&domainservice.ProviderIdentity{Subject: "provider-sub", Email: "raced@example.com", Name: "Raced"}, nil)

	// First lookup misses, the concurrent signup wins the insert, second lookup hits.
	m.userRepo.EXPECT().FindBySubject(ctx, "provider-sub").Return(nil, repository.ErrUserNotFound).Once()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)

			return fn(mockFactory)
		})

	m.userRepo.EXPECT().FindBySubject(ctx, "provider-sub").Return(existing, nil).Once()
	m.tokenService.EXPECT().GenerateTokens(userID, "raced@example.com").Return("access-token", "refresh-token", nil)
	m.userRepo.EXPECT().SaveRefreshToken(ctx, userID, mock.AnythingOfType("*string")).Return(nil)

	output, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "auth-code", CodeVerifier: "verifier"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_LoginWithProvider_MissingCode(t *testing.T) {
	service, _ := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	_, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "", CodeVerifier: "verifier"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeMissing)

	_, err = service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "auth-code", CodeVerifier: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeMissing)
}

func TestAuthService_LoginWithProvider_ExchangeFails(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.oauthClient.EXPECT().
		ExchangeCode(ctx, "bad-code", "verifier").
		Return(nil, errors.New("provider rejected the code"))

	_, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "bad-code", CodeVerifier: "verifier"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_LoginWithProvider_MissingSubject(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.oauthClient.EXPECT().
		ExchangeCode(ctx, "auth-code", "verifier").
		Return(&domainservice.ProviderToken{AccessToken: "provider-access"}, nil)
	m.oauthClient.EXPECT().
		FetchUserInfo(ctx, "provider-access").
		Return(&domainservice.ProviderIdentity{Subject: "", Email: "odd@example.com"}, nil)

	_, err := service.LoginWithProvider(ctx, &usecase.ProviderLoginInput{Code: "auth-code", CodeVerifier: "verifier"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthSubjectMissing)
}

func TestAuthService_Refresh_RotatesTokenPair(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	presented := "current-refresh-token"
	user := &entity.User{ID: userID, Email: "alice@example.com", RefreshToken: &presented}

	m.tokenService.EXPECT().
		ValidateToken(presented).
		Return(&domainservice.Claims{UserID: userID, Email: "alice@example.com", Type: "refresh"}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().
				SaveRefreshToken(ctx, userID, mock.AnythingOfType("*string")).
				Run(func(ctx context.Context, userID uuid.UUID, token *string) {
					require.NotNil(t, token)
					assert.Equal(t, "new-refresh-token", *token)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	m.tokenService.EXPECT().GenerateTokens(userID, "alice@example.com").Return("new-access-token", "new-refresh-token", nil)

	output, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: presented})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateToken("an-access-token").
		Return(&domainservice.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "an-access-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RejectsRotatedToken(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	stored := "the-newer-token"
	user := &entity.User{ID: userID, Email: "alice@example.com", RefreshToken: &stored}

	// The replayed token still carries a valid signature but was rotated out.
	m.tokenService.EXPECT().
		ValidateToken("the-older-token").
		Return(&domainservice.Claims{UserID: userID, Email: "alice@example.com", Type: "refresh"}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "the-older-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RejectsLoggedOutSession(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", RefreshToken: nil}

	m.tokenService.EXPECT().
		ValidateToken("stale-token").
		Return(&domainservice.Claims{UserID: userID, Email: "alice@example.com", Type: "refresh"}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_UserGone(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().
		ValidateToken("orphan-token").
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "orphan-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&domainservice.Claims{UserID: userID, Type: "access"}, nil)
	m.userRepo.EXPECT().SaveRefreshToken(ctx, userID, (*string)(nil)).Return(nil)

	err := service.Logout(ctx, &usecase.LogoutInput{AccessToken: "access-token"})

	require.NoError(t, err)
}

func TestAuthService_Logout_RejectsRefreshToken(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&domainservice.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	err := service.Logout(ctx, &usecase.LogoutInput{AccessToken: "refresh-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	service, m := newAuthServiceForTest(t, nil)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	err := service.Logout(ctx, &usecase.LogoutInput{AccessToken: "garbage"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}
