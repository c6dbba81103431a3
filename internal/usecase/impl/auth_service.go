package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// usernameAttempts bounds how often an external signup retries after losing a username race.
	usernameAttempts     = 3
	usernameSuffixSpace  = 10000
	usernameFallbackStem = "user"
)

var usernameStripPattern = regexp.MustCompile(`[^a-z0-9]`)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	otp          usecase.OtpChallengeUsecase
	sessions     usecase.SessionUsecase
	hasher       service.PasswordHasher
	tokenService service.TokenService
	identity     service.IdentityProvider
	randIntN     func(n int) int
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	OtpUsecase       usecase.OtpChallengeUsecase
	SessionUsecase   usecase.SessionUsecase
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityProvider service.IdentityProvider
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		otp:          params.OtpUsecase,
		sessions:     params.SessionUsecase,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		identity:     params.IdentityProvider,
		randIntN:     rand.IntN,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup stages the account behind an email verification code. No user exists until VerifySignup.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.OtpTicket, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting signup", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	ticket, err := srv.otp.Issue(ctx, &usecase.IssueOtpInput{
		Email:   email,
		Purpose: entity.OtpPurposeSignup,
		Pending: &entity.PendingSignup{
			Username:     entity.NormalizeUsername(input.Username),
			FullName:     strings.TrimSpace(input.FullName),
			PasswordHash: passwordHash,
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue signup otp")
	}

	return ticket, nil
}

func (srv *authService) VerifySignup(ctx context.Context, input *usecase.VerifySignupInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	pending, err := srv.otp.Verify(ctx, email, input.Code, entity.OtpPurposeSignup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify signup otp")
	}

	passwordHash := pending.PasswordHash
	newUser := &entity.User{
		Email:        email,
		Username:     pending.Username,
		FullName:     pending.FullName,
		PasswordHash: &passwordHash,
		Verified:     true,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create verified user")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", newUser.ID.String()), slog.String("email", email))

	return srv.signIn(ctx, newUser, input.Device)
}

func (srv *authService) ResendSignupOtp(ctx context.Context, email string) (*usecase.OtpTicket, error) {
	ticket, err := srv.otp.Resend(ctx, email, entity.OtpPurposeSignup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resend signup otp")
	}

	return ticket, nil
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Accounts created through an external provider have no local password.
	if !user.HasPassword() || !srv.hasher.Check(input.Password, *user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.signIn(ctx, user, input.Device)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID.String()))

	return output, nil
}

func (srv *authService) ExternalAuthorizationURL(ctx context.Context) (string, string, error) {
	consentURL, state, err := srv.identity.AuthorizationURL(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to start external sign-in")
	}

	return consentURL, state, nil
}

func (srv *authService) ExternalCallback(ctx context.Context, input *usecase.ExternalCallbackInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling external callback", slog.String("provider", srv.identity.Name()))

	valid, err := srv.identity.ValidateState(ctx, input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate oauth state")
	}
	if !valid {
		return nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	profile, err := srv.identity.ExchangeAuthCode(ctx, input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	return srv.externalSignIn(ctx, profile, input.Device)
}

func (srv *authService) ExternalTokenLogin(ctx context.Context, input *usecase.ExternalTokenInput) (*usecase.AuthOutput, error) {
	profile, err := srv.identity.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify external id token")
	}

	return srv.externalSignIn(ctx, profile, input.Device)
}

func (srv *authService) externalSignIn(ctx context.Context, profile *service.ExternalProfile, device entity.DeviceContext) (*usecase.AuthOutput, error) {
	var user *entity.User
	var err error

	for attempt := 1; attempt <= usernameAttempts; attempt++ {
		user, err = srv.findOrCreateExternalUser(ctx, profile)
		if err == nil || !errors.Is(err, domainerrors.ErrUsernameTaken) {
			break
		}
		srv.log(ctx).Warn("Generated username collided, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve external user")
	}

	return srv.signIn(ctx, user, device)
}

// findOrCreateExternalUser resolves the profile by external id, then links by email, then creates.
func (srv *authService) findOrCreateExternalUser(ctx context.Context, profile *service.ExternalProfile) (*entity.User, error) {
	var resolved *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByExternalID(ctx, profile.ExternalID)
		if err == nil {
			resolved = user

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by external id")
		}

		email := entity.NormalizeEmail(profile.Email)
		user, err = userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			resolved, err = srv.linkExternalIdentity(ctx, userRepo, user, profile)

			return err
		case errors.Is(err, repository.ErrUserNotFound):
			resolved, err = srv.createExternalUser(ctx, userRepo, email, profile)

			return err
		default:
			return errors.Wrap(err, "failed to find user by email")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute external user transaction")
	}

	return resolved, nil
}

func (srv *authService) linkExternalIdentity(ctx context.Context, userRepo repository.UserRepository, user *entity.User, profile *service.ExternalProfile) (*entity.User, error) {
	if user.ExternalID != nil && *user.ExternalID != profile.ExternalID {
		return nil, errors.WithStack(domainerrors.ErrExternalIdentityTaken)
	}

	externalID := profile.ExternalID
	user.ExternalID = &externalID
	user.Verified = true
	if user.AvatarURL == "" {
		user.AvatarURL = profile.AvatarURL
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to link external identity")
	}

	srv.log(ctx).Info("Linked external identity to existing user",
		slog.String("userID", user.ID.String()),
		slog.String("provider", profile.Provider))

	return user, nil
}

func (srv *authService) createExternalUser(ctx context.Context, userRepo repository.UserRepository, email string, profile *service.ExternalProfile) (*entity.User, error) {
	username, err := srv.generateUsername(ctx, userRepo, profile.DisplayName, email)
	if err != nil {
		return nil, err
	}

	externalID := profile.ExternalID
	newUser := &entity.User{
		Email:      email,
		Username:   username,
		FullName:   profile.DisplayName,
		ExternalID: &externalID,
		AvatarURL:  profile.AvatarURL,
		Verified:   true,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for external authentication")
	}

	srv.log(ctx).Info("Created user from external profile",
		slog.String("userID", newUser.ID.String()),
		slog.String("provider", profile.Provider))

	return newUser, nil
}

// generateUsername derives a handle from the display name or the email local part.
func (srv *authService) generateUsername(ctx context.Context, userRepo repository.UserRepository, displayName, email string) (string, error) {
	candidate := usernameStem(displayName, email) + fmt.Sprintf("%d", srv.randIntN(usernameSuffixSpace))
	if len(candidate) > entity.UsernameMaxLength {
		candidate = candidate[:entity.UsernameMaxLength]
	}

	taken, err := userRepo.ExistsByUsername(ctx, candidate)
	if err != nil {
		return "", errors.Wrap(err, "failed to check username availability")
	}
	if taken {
		return "", errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	return candidate, nil
}

func usernameStem(displayName, email string) string {
	source := displayName
	if strings.TrimSpace(source) == "" {
		source, _, _ = strings.Cut(email, "@")
	}

	stem := usernameStripPattern.ReplaceAllString(strings.ToLower(source), "")
	if len(stem) < entity.UsernameMinLength {
		stem = usernameFallbackStem + stem
	}

	return stem
}

// signIn mints a token pair for the user and binds the refresh token to the calling device.
func (srv *authService) signIn(ctx context.Context, user *entity.User, device entity.DeviceContext) (*usecase.AuthOutput, error) {
	deviceID := srv.sessions.DeviceID(device)

	pair, err := srv.tokenService.MintPair(user.ID, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if _, err := srv.sessions.Register(ctx, &usecase.RegisterSessionInput{
		UserID:       user.ID,
		DeviceID:     deviceID,
		RefreshToken: pair.RefreshToken,
		Device:       device,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to register device session")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// RefreshToken rotates the pair. The presented token must match the one stored for its device,
// so a token that was already rotated away is rejected.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.Verify(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	deviceID := claims.DeviceID
	if deviceID == "" {
		deviceID = srv.sessions.DeviceID(input.Device)
	}

	if err := srv.sessions.Verify(ctx, claims.UserID, deviceID, input.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "refresh token rejected")
	}

	pair, err := srv.tokenService.MintPair(claims.UserID, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if _, err := srv.sessions.Rotate(ctx, &usecase.RegisterSessionInput{
		UserID:               claims.UserID,
		DeviceID:             deviceID,
		RefreshToken:         pair.RefreshToken,
		PreviousRefreshToken: input.RefreshToken,
		Device:               input.Device,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to rotate device session")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*usecase.Identity, error) {
	claims, err := srv.tokenService.Verify(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &usecase.Identity{User: user, DeviceID: claims.DeviceID}, nil
}

func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, deviceID string) error {
	if err := srv.sessions.Revoke(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	return nil
}

func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := srv.sessions.RevokeAll(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to logout all devices")
	}

	return removed, nil
}

func (srv *authService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*usecase.SessionView, error) {
	sessions, err := srv.sessions.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
