package service

import (
	"context"
	"fmt"

	"easywords/internal/domain"
	"easywords/internal/repository"

	"go.uber.org/zap"
)

// AuthAPI is the authentication part of the dictionary service client
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.Credentials, error)
	Register(ctx context.Context, username, password string) error
}

// AuthService handles authentication logic
type AuthService struct {
	api    AuthAPI
	store  repository.StateRepository
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, store repository.StateRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Login obtains a token pair and persists both tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Credentials, error) {
	if username == "" || password == "" {
		return domain.Credentials{}, fmt.Errorf("username and password cannot be empty")
	}

	creds, err := s.api.Login(ctx, username, password)
	if err != nil {
		return domain.Credentials{}, err
	}

	if err := s.store.Set(ctx, domain.KeyAccessToken, creds.Access); err != nil {
		return domain.Credentials{}, err
	}
	if creds.Refresh != "" {
		if err := s.store.Set(ctx, domain.KeyRefreshToken, creds.Refresh); err != nil {
			return domain.Credentials{}, err
		}
	}

	s.logger.Info("User logged in", zap.String("username", username))
	return creds, nil
}

// Register creates a new account on the server
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password cannot be empty")
	}

	if err := s.api.Register(ctx, username, password); err != nil {
		return err
	}

	s.logger.Info("User registered", zap.String("username", username))
	return nil
}

// Logout forgets the persisted access token. It makes no server call and
// keeps the refresh token.
// TODO: decide whether the refresh token should be dropped as well.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, domain.KeyAccessToken)
}

// Token returns the persisted access token or domain.ErrNotAuthorized
func (s *AuthService) Token(ctx context.Context) (string, error) {
	return accessToken(ctx, s.store)
}

func accessToken(ctx context.Context, store repository.StateRepository) (string, error) {
	token, ok, err := store.Get(ctx, domain.KeyAccessToken)
	if err != nil {
		return "", err
	}
	if !ok || token == "" {
		return "", domain.ErrNotAuthorized
	}
	return token, nil
}
