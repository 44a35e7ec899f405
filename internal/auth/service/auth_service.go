package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/security"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/token"
)

// UserStore is the persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type AuthService struct {
	users  UserStore
	hasher *security.PasswordHasher
	tokens *token.Issuer
}

func NewAuthService(users UserStore, hasher *security.PasswordHasher, tokens *token.Issuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register hashes the password and stores a new user. Duplicate usernames
// are not checked here; the store's unique constraint rejects them.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}
