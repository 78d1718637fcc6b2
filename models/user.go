package models

import "time"

// User represents an account record used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique identifier used during authentication.
	// Stored normalized: trimmed and lower-cased.
	Email string `json:"email"`

	// Nickname is the display name of the user.
	// It is non-sensitive and not guaranteed to be unique.
	Nickname string `json:"nickname"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never serialized to JSON.
	HashedPassword string `json:"-"`

	// Password carries the plaintext password of an inbound
	// register/login request body. It is dropped after hashing and
	// must never be persisted or logged.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthenticatedUser is the projection of User embedded into access
// tokens and returned to API callers. It carries no credential data.
type AuthenticatedUser struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Payload returns the AuthenticatedUser projection of the user.
func (u User) Payload() AuthenticatedUser {
	return AuthenticatedUser{
		ID:       u.UserID,
		Nickname: u.Nickname,
		Email:    u.Email,
	}
}
