package store

import (
	"context"
	"time"

	"github.com/ndanilenko/authgate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns the user with the given (normalized) email
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// IsEmailRegistered reports whether a user with the given email exists.
	IsEmailRegistered(ctx context.Context, email string) (bool, error)
}

// SessionRepository stores the hash of the currently valid access token
// per user. At most one entry per user exists; a new login overwrites the
// previous one, which is what invalidates all earlier tokens.
type SessionRepository interface {
	// SaveTokenHash records tokenHash as the single valid session
	// reference for userID, expiring after ttl.
	SaveTokenHash(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error

	// GetTokenHash returns the stored reference hash for userID, or
	// ErrNoSessionWasFound if the user has no live session entry.
	GetTokenHash(ctx context.Context, userID int64) (string, error)

	// DeleteTokenHash removes the session reference for userID.
	// Deleting a missing entry is not an error.
	DeleteTokenHash(ctx context.Context, userID int64) error
}
