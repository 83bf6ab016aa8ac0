package models

import "time"

// User represents a registered account.
// Username is the permanent identifier every message refers to.
type User struct {
	// Username uniquely identifies the account and never changes.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Phone is used as the SMS destination for new message notifications.
	Phone string `json:"phone"`

	// JoinAt is set once when the account is registered.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt is refreshed on every successful authentication.
	LastLoginAt time.Time `json:"last_login_at"`
}

// Summary returns the public profile of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the public part of an account embedded into message views
// and returned by the users listing.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
