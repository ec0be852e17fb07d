package usecase

import (
	"context"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account. Exactly one
// of Email or Phone must be set.
type SignUpInput struct {
	Email     string
	Phone     string
	Password  string
	FirstName string
	LastName  string
}

// SignInInput defines the data required to log in. Identifier is an email
// address or a phone number.
type SignInInput struct {
	Identifier string
	Password   string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token of the session to revoke.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account.
type SignUpOutput struct {
	User *entity.User `json:"user"`
}

// SignInOutput returns the generated token pair after a successful login.
type SignInOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access_token"`
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input LogoutInput) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the user; user-state rows cascade at the
	// schema level.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
