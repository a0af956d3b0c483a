package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/countrybook/internal/client/storage"
	"github.com/iudanet/countrybook/internal/models"
)

// Store implements account CRUD over a single serialized table.
//
// Every mutation rewrites the whole table under storage.KeyUsers. The
// read-modify-write runs inside storage.KeyValue.Update, so writers sharing
// one storage instance never lose each other's updates. Between separate
// storage instances (two processes on a copied file, an imported table)
// the last write wins for the whole table.
type Store struct {
	kv     storage.KeyValue
	logger *slog.Logger
	now    func() time.Time
}

// Option configures Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an account store on top of kv.
func NewStore(kv storage.KeyValue, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the whole account table.
func (s *Store) Load(ctx context.Context) (Table, error) {
	data, err := s.kv.Get(ctx, storage.KeyUsers)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("failed to read account table: %w", err)
	}
	return decodeTable(data)
}

// Save replaces the whole account table.
func (s *Store) Save(ctx context.Context, table Table) error {
	data, err := encodeTable(table)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("failed to write account table: %w", err)
	}
	return nil
}

// Register creates an account with empty favorites.
// Returns ErrDuplicateUsername if the username is taken; the existing
// account is left untouched.
func (s *Store) Register(ctx context.Context, username, password, email string) (*models.Account, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	var created *models.Account
	err := s.mutate(ctx, func(table Table) error {
		if _, exists := table[username]; exists {
			return ErrDuplicateUsername
		}

		table[username] = &models.Account{
			Username:  username,
			Password:  password,
			Email:     email,
			Favorites: []string{},
			CreatedAt: s.now().UTC(),
		}
		created = table.clone(username)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "username", username)
	return created, nil
}

// Authenticate returns the account when username exists and password
// matches exactly. Any mismatch is reported as ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	acc, ok := table[username]
	if !ok || acc.Password != password {
		return nil, ErrInvalidCredentials
	}
	return table.clone(username), nil
}

// Get returns the account for username or ErrNotFound.
func (s *Store) Get(ctx context.Context, username string) (*models.Account, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	acc := table.clone(username)
	if acc == nil {
		return nil, ErrNotFound
	}
	return acc, nil
}

// SetFavorites replaces the stored favorites list of username.
func (s *Store) SetFavorites(ctx context.Context, username string, favorites []string) error {
	return s.UpdateAccount(ctx, username, func(acc *models.Account) error {
		acc.Favorites = favorites
		return nil
	})
}

// UpdateAccount re-reads the table, applies fn to the account of username
// and writes the table back in one storage transaction.
func (s *Store) UpdateAccount(ctx context.Context, username string, fn func(acc *models.Account) error) error {
	return s.mutate(ctx, func(table Table) error {
		acc, ok := table[username]
		if !ok {
			return ErrNotFound
		}
		if err := fn(acc); err != nil {
			return err
		}
		acc.Username = username
		acc.Favorites = models.NormalizeFavorites(acc.Favorites)
		return nil
	})
}

// Count returns the number of registered accounts.
func (s *Store) Count(ctx context.Context) (int, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	return len(table), nil
}

func (s *Store) mutate(ctx context.Context, fn func(table Table) error) error {
	err := s.kv.Update(ctx, storage.KeyUsers, func(current []byte, found bool) ([]byte, error) {
		table, err := decodeTable(current)
		if err != nil {
			return nil, err
		}
		if err := fn(table); err != nil {
			return nil, err
		}
		return encodeTable(table)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Error("account table update failed", "error", err)
		return fmt.Errorf("failed to update account table: %w", err)
	}
	return nil
}
