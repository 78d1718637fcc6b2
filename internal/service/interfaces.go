package service

import (
	"context"

	"github.com/ndanilenko/authgate/models"
)

// AuthService covers credential handling and the access-token lifecycle:
// registration, login, token issuance/parsing, and logout.
type AuthService interface {
	// SignUp registers a new user and returns its public payload.
	// Sign-up itself issues no token; callers log in separately.
	SignUp(ctx context.Context, user models.User) (models.AuthenticatedUser, error)

	// Login authenticates the user by email/password, issues an access
	// token, and — when concurrent-login limiting is enabled — records
	// the token's hash as the user's single valid session reference.
	Login(ctx context.Context, user models.User) (models.AuthenticatedUser, models.Token, error)

	// CreateToken issues a signed access token for the given payload.
	CreateToken(ctx context.Context, user models.AuthenticatedUser) (models.Token, error)

	// ParseToken verifies signature, expiry and issuer of a raw token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Logout clears the user's session reference, invalidating all
	// currently issued tokens when limiting is enabled.
	Logout(ctx context.Context, userID int64) error
}

// TokenValidator decides, per request, whether a verified bearer token
// authenticates a user.
//
// The caller must have verified the token's signature and expiry already
// (via [AuthService.ParseToken]); Validate receives both the decoded token
// and the raw presented string, because the concurrency check compares the
// raw string — not the decoded payload — against the stored reference hash.
type TokenValidator interface {
	Validate(ctx context.Context, rawToken string, token models.Token) (models.User, error)
}
