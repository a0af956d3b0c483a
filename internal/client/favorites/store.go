package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/countrybook/internal/broadcast"
	"github.com/iudanet/countrybook/internal/client/account"
	"github.com/iudanet/countrybook/internal/models"
)

// Changed is the payload-less favorites-changed notification.
type Changed struct{}

// Accounts is the part of the account store the favorites store needs.
type Accounts interface {
	Get(ctx context.Context, username string) (*models.Account, error)
	UpdateAccount(ctx context.Context, username string, fn func(acc *models.Account) error) error
}

// Store reads and toggles one account's favorites and notifies subscribers
// after every change. Subscribers are expected to re-read through the store
// instead of caching favorites.
type Store struct {
	accounts Accounts
	bus      *broadcast.Broadcaster[Changed]
	logger   *slog.Logger
}

// NewStore creates a favorites store on top of accounts.
func NewStore(accounts Accounts, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		accounts: accounts,
		bus:      broadcast.New[Changed](1),
		logger:   logger,
	}
}

// IsFavorite reports whether code is in the favorites of username.
// Unknown users and users without favorites yield false.
func (s *Store) IsFavorite(ctx context.Context, username, code string) (bool, error) {
	favs, err := s.List(ctx, username)
	if err != nil {
		return false, err
	}
	return slices.Contains(favs, code), nil
}

// List returns the favorites of username; empty for no user or no account.
func (s *Store) List(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return []string{}, nil
	}

	acc, err := s.accounts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return acc.Favorites, nil
}

// Count returns the number of favorites of username.
func (s *Store) Count(ctx context.Context, username string) (int, error) {
	favs, err := s.List(ctx, username)
	if err != nil {
		return 0, err
	}
	return len(favs), nil
}

// Toggle adds code if absent or removes it if present and returns whether
// it is a favorite afterwards. Without a logged-in user it does nothing.
func (s *Store) Toggle(ctx context.Context, username, code string) (bool, error) {
	if username == "" || code == "" {
		return false, nil
	}

	var nowFavorite bool
	err := s.accounts.UpdateAccount(ctx, username, func(acc *models.Account) error {
		if i := slices.Index(acc.Favorites, code); i >= 0 {
			acc.Favorites = slices.Delete(acc.Favorites, i, i+1)
			nowFavorite = false
		} else {
			acc.Favorites = append(acc.Favorites, code)
			nowFavorite = true
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			// Сессия без аккаунта: тихо игнорируем, как и отсутствие сессии
			s.logger.Debug("favorite toggle for unknown account ignored", "username", username)
			return false, nil
		}
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	s.logger.Debug("favorite toggled", "username", username, "code", code, "favorite", nowFavorite)
	s.bus.Publish(Changed{})
	return nowFavorite, nil
}

// Subscribe returns a channel that receives a value after each change
// until ctx is done. Notifications coalesce: a subscriber that has not
// drained the previous one gets a single pending value.
func (s *Store) Subscribe(ctx context.Context) <-chan Changed {
	return s.bus.Subscribe(ctx)
}

// Close ends all subscriptions.
func (s *Store) Close() {
	s.bus.Close()
}
