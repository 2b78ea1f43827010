package models

import "time"

// User is an account stored in the flat document.
// PasswordHash is kept in the document but stripped from every API response
// via [User.Public].
type User struct {
	// ID is the unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash is the salted argon2id hash in PHC string format.
	// Older documents may hold an unsalted SHA-256 hex digest instead.
	PasswordHash string `json:"passwordHash,omitempty"`

	// IsAdmin grants access to user management. The first registered user
	// becomes an admin automatically.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns a copy of the user that is safe to send over the wire.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Credentials is the payload of register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserCreate is the admin payload for creating a user.
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserUpdate is a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
}

// PasswordChange is the payload of the change password request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
