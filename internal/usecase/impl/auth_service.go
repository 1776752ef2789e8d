// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"agora/config"
	deliverycontext "agora/internal/delivery/context"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	"agora/internal/domain/service"
	"agora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	oauthClient    service.OAuthClient
	passwordPolicy *config.PasswordStrengthConfig
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthClient  service.OAuthClient
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var policy *config.PasswordStrengthConfig
	if params.Config != nil {
		policy = params.Config.PasswordStrength
	}

	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		oauthClient:    params.OAuthClient,
		passwordPolicy: policy,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete local account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := validatePasswordStrength(srv.passwordPolicy, input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: &hashedPassword,
	}
	if input.Username != "" {
		username := input.Username
		newUser.Username = &username
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.openSession(ctx, newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to open session after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUser,
	}, nil
}

// Login orchestrates the local password login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// Lookup hits the primary so a freshly registered account can log in immediately.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Federated-only accounts have no password to check.
	if !user.HasPassword() {
		srv.log(ctx).Warn("Login attempted on account without local password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, *user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// LoginWithProvider completes the authorization code + PKCE flow and opens a
// local session for the federated identity.
func (srv *authService) LoginWithProvider(ctx context.Context, input *usecase.ProviderLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling provider login")

	// Reject before any network call.
	if input.Code == "" || input.CodeVerifier == "" {
		return nil, domainerrors.ErrOAuthCodeMissing.WrapMessage("authorization code and verifier are required")
	}

	providerToken, err := srv.oauthClient.ExchangeCode(ctx, input.Code, input.CodeVerifier)
	if err != nil {
		srv.log(ctx).Warn("Provider code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("failed to exchange authorization code")
	}

	identity, err := srv.oauthClient.FetchUserInfo(ctx, providerToken.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Provider userinfo fetch failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("failed to fetch provider user info")
	}

	if identity.Subject == "" {
		return nil, domainerrors.ErrOAuthSubjectMissing.WrapMessage("provider identity has no subject")
	}

	user, err := srv.findOrCreateBySubject(ctx, identity)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve federated user", slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		srv.log(ctx).Error("Failed to open session for federated user", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// findOrCreateBySubject resolves the local account behind a provider identity.
// The unique constraint on subject closes the concurrent-signup race: a
// duplicate-key failure means somebody else just created the row, so the
// create is retried as a lookup.
func (srv *authService) findOrCreateBySubject(ctx context.Context, identity *service.ProviderIdentity) (*entity.User, error) {
	user, err := srv.userRepo.FindBySubject(ctx, identity.Subject)
	if err == nil {
		srv.log(ctx).Debug("Found existing federated user", slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by subject")
	}

	srv.log(ctx).Info("Federated user not found, creating new user", slog.String("email", identity.Email))

	subject := identity.Subject
	newUser := &entity.User{
		Subject:     &subject,
		Email:       identity.Email,
		Name:        identity.Name,
		StudentID:   identity.StudentID,
		PhoneNumber: identity.PhoneNumber,
	}

	createErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, newUser)
	})
	if createErr == nil {
		return newUser, nil
	}
	if !errors.Is(createErr, repository.ErrDuplicateUser) {
		return nil, errors.Wrap(createErr, "failed to create federated user")
	}

	user, err = srv.userRepo.FindBySubject(ctx, identity.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload federated user after duplicate key")
	}

	return user, nil
}

// Refresh rotates a refresh token into a fresh pair. The presented token must
// match the one stored on the user row; a rotated-out token fails even though
// its signature still verifies.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != tokenTypeRefresh {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	var output *usecase.RefreshOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("token user no longer exists")
			}

			return errors.Wrap(err, "failed to find user for refresh")
		}

		if user.RefreshToken == nil || *user.RefreshToken != input.RefreshToken {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token has been rotated or revoked")
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to generate rotated token pair")
		}

		if err := userRepo.SaveRefreshToken(ctx, user.ID, &refreshToken); err != nil {
			return errors.Wrap(err, "failed to persist rotated refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout ends the active session by clearing the stored refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	claims, err := srv.tokenService.ValidateToken(input.AccessToken)
	if err != nil || claims.Type != tokenTypeAccess {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))

		return domainerrors.ErrAccessTokenInvalid.WrapMessage("invalid access token")
	}

	if err := srv.userRepo.SaveRefreshToken(ctx, claims.UserID, nil); err != nil {
		srv.log(ctx).Error("Failed to clear refresh token", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", claims.UserID))

	return nil
}

// openSession issues a token pair and records the refresh token as the user's
// single active session.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.userRepo.SaveRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// validatePasswordStrength checks a plaintext password against the configured
// policy. A nil policy only enforces a non-empty password.
func validatePasswordStrength(policy *config.PasswordStrengthConfig, password string) error {
	if password == "" {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is required")
	}
	if policy == nil {
		return nil
	}

	if policy.MinLength > 0 && len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case strings.ContainsRune("!@#$%^&*()-_=+[]{};:,.<>?/", r):
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires an uppercase letter")
	}
	if policy.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a lowercase letter")
	}
	if policy.RequireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a number")
	}
	if policy.RequireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a special character")
	}

	return nil
}
