package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/auth"
	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

// AuthResult is a signed token paired with the user it authenticates.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	log.Debug("registering user: email=%s", email)

	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < 6 {
		return nil, errors.NewValidationError("password", "must be at least 6 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password: %v", err)
		return nil, errors.NewInternalError(err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		log.Error("failed to insert user: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.users.Get(ctx, user.ID)
	if err != nil || created == nil {
		log.Error("failed to load created user: %v", err)
		return nil, errors.NewInternalError(err)
	}

	token, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		log.Error("failed to issue token: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("user registered: id=%s", created.ID)
	return &AuthResult{Token: token, User: created}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	log.Debug("login attempt: email=%s", email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Error("failed to look up user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	// Same error for unknown email and wrong password.
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("user logged in: id=%s", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}
