// Package auth wires form validation, the account store and the session.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/countrybook/internal/models"
	"github.com/iudanet/countrybook/internal/validation"
)

// Accounts is the account store as seen by the auth service.
type Accounts interface {
	Register(ctx context.Context, username, password, email string) (*models.Account, error)
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)
}

// Sessions is the session manager as seen by the auth service.
type Sessions interface {
	Login(ctx context.Context, username string) error
	Logout(ctx context.Context) error
	Current() (string, bool)
}

// RegisterForm поля формы регистрации
type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
}

// Service предоставляет функции авторизации
type Service struct {
	accounts Accounts
	sessions Sessions
	logger   *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(accounts Accounts, sessions Sessions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates the account and logs it in.
// Validation failures are returned as validation.FieldErrors.
func (s *Service) Register(ctx context.Context, form RegisterForm) (*models.Account, error) {
	if err := validation.ValidateRegistration(form.Username, form.Password, form.ConfirmPassword, form.Email); err != nil {
		return nil, err
	}

	acc, err := s.accounts.Register(ctx, form.Username, form.Password, form.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := s.sessions.Login(ctx, acc.Username); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Info("user registered", "username", acc.Username)
	return acc, nil
}

// Login checks the credentials and starts a session. A failed
// authentication leaves the current session untouched.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Account, error) {
	if err := validation.ValidateLogin(username, password); err != nil {
		return nil, err
	}

	acc, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Debug("login rejected", "username", username)
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.sessions.Login(ctx, acc.Username); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return acc, nil
}

// Logout ends the session. It is a no-op without one.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// Current returns the logged-in username.
func (s *Service) Current() (string, bool) {
	return s.sessions.Current()
}
