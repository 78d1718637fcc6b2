package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ndanilenko/authgate/internal/config"
	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/ndanilenko/authgate/internal/store"
	"github.com/ndanilenko/authgate/internal/utils"
	"github.com/ndanilenko/authgate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence, bcrypt for secret
// hashing, and a SessionRepository for the single-session reference.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository stores the hash of the currently valid token per
	// user. Nil when no session cache is configured.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Session references written on login expire after the same duration.
	tokenDuration time.Duration

	// limitConcurrentLogin enables the single-session policy: when true,
	// every login overwrites the user's session reference, invalidating
	// all previously issued tokens.
	limitConcurrentLogin bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       storages.UserRepository,
		sessionRepository:    storages.SessionRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		limitConcurrentLogin: cfg.LimitConcurrentLogin,
		logger:               logger,
	}
}

// SignUp creates a new user account.
//
// It validates that Email, Password and Nickname are non-empty, checks email
// uniqueness, hashes the password with bcrypt, and delegates persistence to
// the UserRepository. The returned payload exposes only {id, nickname, email}.
//
// Returns:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyRegistered if the email is already taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, user models.User) (models.AuthenticatedUser, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" || user.Nickname == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.AuthenticatedUser{}, ErrInvalidDataProvided
	}

	user.Email = normalizeEmail(user.Email)

	emailExists, err := a.userRepository.IsEmailRegistered(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("email uniqueness check failed")
		return models.AuthenticatedUser{}, fmt.Errorf("email uniqueness check failed: %w", err)
	}
	if emailExists {
		log.Error().Str("email", user.Email).Msg("email already registered")
		return models.AuthenticatedUser{}, store.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := utils.HashSecret(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthenticatedUser{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.HashedPassword = hashedPassword
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.AuthenticatedUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Payload(), nil
}

// Login authenticates an existing user and issues an access token.
//
// It looks the account up by normalized email, compares the supplied
// password against the stored bcrypt hash, and mints a signed token. When
// concurrent-login limiting is enabled the bcrypt hash of the raw token is
// written to the session store with a TTL equal to the token duration,
// overwriting any previous reference — which is what invalidates earlier
// tokens. Two concurrent logins race with last-write-wins semantics.
//
// Returns:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongCredentials if the user is unknown or the password is wrong.
//   - A wrapped error if token creation or the session write fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.AuthenticatedUser, models.Token, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.AuthenticatedUser{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(user.Email))
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.AuthenticatedUser{}, models.Token{}, ErrWrongCredentials
	}

	if !utils.CompareWithHash(user.Password, foundUser.HashedPassword) {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.AuthenticatedUser{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.CreateToken(ctx, foundUser.Payload())
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		return models.AuthenticatedUser{}, models.Token{}, err
	}

	if a.limitConcurrentLogin {
		tokenHash, err := utils.HashSecret(token.SignedString)
		if err != nil {
			log.Err(err).Int64("id", foundUser.UserID).Msg("token hashing failed")
			return models.AuthenticatedUser{}, models.Token{}, fmt.Errorf("token hashing failed: %w", err)
		}

		if err := a.sessionRepository.SaveTokenHash(ctx, foundUser.UserID, tokenHash, a.tokenDuration); err != nil {
			log.Err(err).Int64("id", foundUser.UserID).Msg("saving session reference failed")
			return models.AuthenticatedUser{}, models.Token{}, fmt.Errorf("saving session reference failed: %w", err)
		}
	}

	return foundUser.Payload(), token, nil
}

// CreateToken issues a signed JWT for the given user payload.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, embeds the payload under the "user" claim,
// and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.AuthenticatedUser) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Logout deletes the user's session reference, so that — with limiting
// enabled — every outstanding token stops matching and the user must
// authenticate again. Without a session cache this is a no-op.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	if a.sessionRepository == nil {
		return nil
	}

	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteTokenHash(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("deleting session reference failed")
		return fmt.Errorf("deleting session reference failed: %w", err)
	}

	return nil
}

// normalizeEmail is the canonical form used for all lookups and writes:
// surrounding whitespace removed, lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
