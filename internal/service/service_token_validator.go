package service

import (
	"context"
	"errors"

	"github.com/ndanilenko/authgate/internal/config"
	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/ndanilenko/authgate/internal/store"
	"github.com/ndanilenko/authgate/internal/utils"
	"github.com/ndanilenko/authgate/models"
)

// tokenValidator is the concrete implementation of TokenValidator.
//
// It is constructed with its collaborators passed explicitly — the user
// repository and the session repository — and holds no per-request state;
// every call is evaluated independently.
type tokenValidator struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// limitConcurrentLogin gates the session-reference check. When false,
	// a token passing signature verification and resolving to an existing
	// user is accepted regardless of cache state.
	limitConcurrentLogin bool

	logger *logger.Logger
}

// NewTokenValidator constructs a TokenValidator enforcing the configured
// concurrent-login policy.
func NewTokenValidator(storages *store.Storages, cfg config.App, logger *logger.Logger) TokenValidator {
	return &tokenValidator{
		userRepository:       storages.UserRepository,
		sessionRepository:    storages.SessionRepository,
		limitConcurrentLogin: cfg.LimitConcurrentLogin,
		logger:               logger,
	}
}

// Validate resolves the token's subject to a user and, when concurrent-login
// limiting is enabled, confirms the presented raw token matches the single
// reference hash stored for that user.
//
// Steps:
//  1. Resolve the user by the token's user id. A subject that no longer
//     resolves (deleted account) fails closed with ErrTokenMismatch.
//  2. With limiting disabled, the resolved user is the authenticated
//     identity — accept.
//  3. With limiting enabled, fetch the reference hash; a missing entry or a
//     raw token that does not match it yields ErrTokenMismatch. The
//     comparison uses the same bcrypt hash-compare primitive as passwords,
//     never plain string equality.
//
// Every rejection is terminal for the request; no retries apply.
func (v *tokenValidator) Validate(ctx context.Context, rawToken string, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := v.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		// fail closed: a deleted or unknown subject must not be probeable
		log.Err(err).Int64("id", token.UserID).Msg("token subject does not resolve to a user")
		return models.User{}, ErrTokenMismatch
	}

	if !v.limitConcurrentLogin {
		return user, nil
	}

	referenceHash, err := v.sessionRepository.GetTokenHash(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			log.Error().Int64("id", user.UserID).Msg("no session reference for user")
			return models.User{}, ErrTokenMismatch
		}
		log.Err(err).Int64("id", user.UserID).Msg("session reference lookup failed")
		return models.User{}, err
	}

	if !utils.CompareWithHash(rawToken, referenceHash) {
		log.Error().Int64("id", user.UserID).Msg("presented token does not match session reference")
		return models.User{}, ErrTokenMismatch
	}

	return user, nil
}
