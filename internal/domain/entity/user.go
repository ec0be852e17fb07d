package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. A user signs up with an email address or a
// phone number; exactly one of the two is required and either can be used
// to sign in.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           *string   `json:"email"` // Nil when the account was created with a phone number.
	Phone           *string   `json:"phone"` // Nil when the account was created with an email address.
	PasswordHash    string    `json:"-"`     // bcrypt hash; never serialized to clients.
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Identifier returns whichever contact handle the account was created with.
func (u *User) Identifier() string {
	if u.Email != nil && *u.Email != "" {
		return *u.Email
	}
	if u.Phone != nil {
		return *u.Phone
	}

	return ""
}

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token after the old one expires, without requiring
// credentials.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"` // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
