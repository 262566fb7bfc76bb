package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

const (
	// RoleUser is the default role for newly registered accounts.
	RoleUser Role = "user"

	// RoleAdmin grants access to the administrative endpoints
	// (user listing, cross-user deletion).
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	// It is stored trimmed and lower-cased; uniqueness is enforced by the
	// database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Plaintext passwords are never persisted or logged.
	PasswordHash string `json:"-"`

	// Role controls access to administrative endpoints.
	Role Role `json:"role"`

	// ResetTokenHash is the SHA-256 digest of an outstanding password reset
	// secret. Nil when no reset is pending. Always set and cleared together
	// with ResetTokenExpiry.
	ResetTokenHash *string `json:"-"`

	// ResetTokenExpiry is the hard cutoff after which the pending reset
	// secret stops being accepted. Nil when no reset is pending.
	ResetTokenExpiry *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
