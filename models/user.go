package models

import "time"

// User represents an account entity used for authentication and for keeping
// the user's liked and shared video sets.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID in canonical form).
	UserID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"user"`

	// Email is the unique login identifier. Matching is case-sensitive.
	Email string `json:"email"`

	// Password carries the plaintext secret on the way in (signup/login
	// requests) and is never serialized on the way out.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in the store.
	PasswordHash string `json:"-"`

	// LikedVideos is the ordered set of liked video identifiers.
	LikedVideos MembershipSet `json:"likedVideos"`

	// SharedVideos is the ordered set of shared video identifiers.
	SharedVideos MembershipSet `json:"sharedVideos"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	if u.LikedVideos == nil {
		u.LikedVideos = MembershipSet{}
	}
	if u.SharedVideos == nil {
		u.SharedVideos = MembershipSet{}
	}
	return u
}
