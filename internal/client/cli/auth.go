package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/countrybook/internal/client/account"
	"github.com/iudanet/countrybook/internal/client/auth"
	"github.com/iudanet/countrybook/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	var form auth.RegisterForm
	var err error
	if form.Username, err = c.io.ReadInput("Username: "); err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if form.Email, err = c.io.ReadInput("Email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if form.Password, err = c.io.ReadPassword("Password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if form.ConfirmPassword, err = c.io.ReadPassword("Confirm password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	acc, err := c.auth.Register(ctx, form)
	if err != nil {
		if c.printFieldErrors(err) {
			return fmt.Errorf("registration failed")
		}
		if errors.Is(err, account.ErrDuplicateUsername) {
			return fmt.Errorf("username %q is already taken", form.Username)
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Logged in as: %s\n", acc.Username)
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	acc, err := c.auth.Login(ctx, username, password)
	if err != nil {
		if c.printFieldErrors(err) {
			return fmt.Errorf("login failed")
		}
		if errors.Is(err, account.ErrInvalidCredentials) {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", acc.Username)
	c.io.Printf("Favorites: %d\n", len(acc.Favorites))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	username, ok := c.auth.Current()
	if !ok {
		c.io.Println("Not logged in.")
		return nil
	}

	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Printf("✓ Logged out %s\n", username)
	return nil
}

// printFieldErrors печатает ошибки валидации по полям
func (c *Cli) printFieldErrors(err error) bool {
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		return false
	}

	c.io.Println()
	for _, field := range []string{
		validation.FieldUsername,
		validation.FieldEmail,
		validation.FieldPassword,
		validation.FieldConfirmPassword,
	} {
		if msg, ok := fe[field]; ok {
			c.io.Printf("  %s: %s\n", field, msg)
		}
	}
	return true
}
