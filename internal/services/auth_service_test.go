package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyvault/backend/internal/auth"
	apperrors "github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/services"
	"github.com/studyvault/backend/internal/testutil/mocks"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

func TestAuthServiceRegister(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	var createdID string
	userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		createdID = u.ID
		return u.Email == "new@example.com" && u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(nil)
	userRepo.On("Get", mock.Anything, mock.Anything).Return(&models.User{ID: "user-1", Email: "new@example.com"}, nil)

	svc := services.NewAuthService(userRepo, testIssuer())
	result, err := svc.Register(context.Background(), " New@Example.com ", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, createdID)

	claims, err := testIssuer().Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := services.NewAuthService(new(mocks.MockUserRepository), testIssuer())

	_, err := svc.Register(context.Background(), "not-an-email", "secret123")
	requireAppErrorCode(t, err, apperrors.ErrCodeValidation)

	_, err = svc.Register(context.Background(), "ok@example.com", "short")
	requireAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Insert", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := services.NewAuthService(userRepo, testIssuer())
	_, err := svc.Register(context.Background(), "taken@example.com", "secret123")
	requireAppErrorCode(t, err, apperrors.ErrCodeConflict)
}

func TestAuthServiceLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := new(mocks.MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(&models.User{
		ID: "user-1", Email: "user@example.com", PasswordHash: hash,
	}, nil)

	svc := services.NewAuthService(userRepo, testIssuer())
	result, err := svc.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user-1", result.User.ID)

	_, err = svc.Login(context.Background(), "user@example.com", "wrong-password")
	requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := services.NewAuthService(userRepo, testIssuer())
	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
}
