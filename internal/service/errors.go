package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenMismatch rejects a structurally valid token that does not
	// match the user's single live session reference (or whose subject no
	// longer resolves to a user — the validator fails closed).
	ErrTokenMismatch = errors.New("token mismatch")
)
