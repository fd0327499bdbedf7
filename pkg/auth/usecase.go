package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes token issuing behavior.
type AuthUseCase interface {
	Enabled() bool
	Login(ctx context.Context, clientID, password string) (Token, error)
	// Issue mints a token without a password check; used by operator tooling.
	Issue(ctx context.Context, clientID string) (Token, error)
}

type authService struct {
	enabled bool
	clients ClientStore
	tokens  TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(enabled bool, clients ClientStore, tokens TokenGenerator) AuthUseCase {
	return &authService{enabled: enabled, clients: clients, tokens: tokens}
}

func (s *authService) Enabled() bool { return s.enabled }

func (s *authService) Login(ctx context.Context, clientID, password string) (Token, error) {
	if !s.enabled {
		return Token{}, ErrDisabled
	}
	if clientID == "" || password == "" {
		return Token{}, ErrInvalidCredentials
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Token{}, ErrInvalidCredentials
		}
		return Token{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return Token{}, ErrInvalidCredentials
	}
	return s.tokens.Generate(ctx, client)
}

func (s *authService) Issue(ctx context.Context, clientID string) (Token, error) {
	if clientID == "" {
		return Token{}, ErrInvalidCredentials
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return Token{}, fmt.Errorf("client %q: %w", clientID, err)
	}
	return s.tokens.Generate(ctx, client)
}

// HashPassword returns a bcrypt hash suitable for AUTH_CLIENT_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidCredentials
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
