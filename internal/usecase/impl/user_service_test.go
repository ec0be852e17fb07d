package impl

import (
	"context"
	"testing"

	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *fakeUserRepo
	refreshTokenRepo *fakeRefreshTokenRepo
	tokenService     *fakeTokenService
}

func createTestUserService() userServiceFixtures {
	userRepo := &fakeUserRepo{}
	refreshTokenRepo := newFakeRefreshTokenRepo()
	tokenService := newFakeTokenService()

	service := NewUserService(UserServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           &fakeHasher{},
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
	}
}

func TestUserService_SignUp_WithEmail(t *testing.T) {
	fx := createTestUserService()

	output, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:     "jane@example.com",
		Password:  "Password123!",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.Email)
	assert.Equal(t, "jane@example.com", *output.User.Email)
	assert.Nil(t, output.User.Phone)
	assert.Equal(t, "hashed:Password123!", output.User.PasswordHash)
	assert.NotZero(t, output.User.ID)
}

func TestUserService_SignUp_WithPhone(t *testing.T) {
	fx := createTestUserService()

	output, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Phone:    "+15550001111",
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.Phone)
	assert.Equal(t, "+15550001111", *output.User.Phone)
	assert.Nil(t, output.User.Email)
}

func TestUserService_SignUp_RequiresExactlyOneIdentifier(t *testing.T) {
	fx := createTestUserService()

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "jane@example.com",
		Phone:    "+15550001111",
		Password: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestUserService()

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	_, err = fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Other456!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_SignIn_Success(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	signup, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	output, err := fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "jane@example.com",
		Password:   "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, output.User.ID)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	// The session is stored hashed, never raw.
	stored, err := fx.refreshTokenRepo.FindByTokenHash(ctx, "hash-"+output.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, stored.UserID)
}

func TestUserService_SignIn_ByPhone(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Phone:    "+15550001111",
		Password: "Password123!",
	})
	require.NoError(t, err)

	output, err := fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "+15550001111",
		Password:   "Password123!",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User.Phone)
	assert.Equal(t, "+15550001111", *output.User.Phone)
}

func TestUserService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	_, err = fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "jane@example.com",
		Password:   "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignIn_UnknownIdentifier(t *testing.T) {
	fx := createTestUserService()

	_, err := fx.service.SignIn(context.Background(), usecase.SignInInput{
		Identifier: "ghost@example.com",
		Password:   "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_IssuesNewAccessToken(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	signin, err := fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "jane@example.com",
		Password:   "Password123!",
	})
	require.NoError(t, err)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{
		RefreshToken: signin.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
}

func TestUserService_RefreshToken_RevokedToken(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	signin, err := fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "jane@example.com",
		Password:   "Password123!",
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: signin.RefreshToken}))

	_, err = fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{
		RefreshToken: signin.RefreshToken,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_DeleteAccount_RevokesSessions(t *testing.T) {
	fx := createTestUserService()
	ctx := context.Background()

	signup, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	signin, err := fx.service.SignIn(ctx, usecase.SignInInput{
		Identifier: "jane@example.com",
		Password:   "Password123!",
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteAccount(ctx, signup.User.ID))

	_, err = fx.service.GetProfile(ctx, signup.User.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = fx.refreshTokenRepo.FindByTokenHash(ctx, "hash-"+signin.RefreshToken)
	assert.Error(t, err)
}
