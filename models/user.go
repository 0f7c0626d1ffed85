package models

import "time"

// User represents an account entity used for authentication and ownership
// of todos. Password always holds a bcrypt digest and is never serialised.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Email is the unique login of the user. Stored as provided (case-sensitive).
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is the one-way hash of the user's password.
	// Excluded from JSON so that it never leaves the server.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update. Only non-nil fields are
// written; Password must already be hashed when it reaches the store.
type UserUpdate struct {
	ID        string
	Email     *string
	Name      *string
	Password  *string
	UpdatedAt time.Time
}

// IsEmpty reports whether the update carries no field changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.Password == nil
}

// LoginResponse is the payload returned on successful login: the user
// record plus the issued session token.
type LoginResponse struct {
	User
	Token string `json:"token"`
}
