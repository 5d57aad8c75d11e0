package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned by the
	// persistence layer on creation and immutable afterwards.
	UserID int64 `json:"id"`

	// Email is the unique address the user signs in with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and it is
	// never serialized into API responses.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"firstName"`

	// LastName is the optional family name of the user.
	LastName string `json:"lastName"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
