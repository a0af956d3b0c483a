package account

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/countrybook/internal/client/storage"
	"github.com/iudanet/countrybook/internal/client/storage/memory"
	"github.com/iudanet/countrybook/internal/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *memory.Storage) {
	t.Helper()
	kv := memory.New()
	return NewStore(kv, WithClock(func() time.Time { return fixedNow })), kv
}

func TestStore_Register(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	acc, err := s.Register(ctx, "alice", "pass1", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "pass1", acc.Password)
	assert.Equal(t, "alice@example.com", acc.Email)
	assert.Empty(t, acc.Favorites)
	assert.NotNil(t, acc.Favorites)
	assert.Equal(t, fixedNow, acc.CreatedAt)

	// Вся таблица сохраняется одним значением под ключом users
	raw, err := kv.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)

	var stored map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Contains(t, stored, "alice")
	assert.Equal(t, "pass1", stored["alice"]["password"])
	assert.Equal(t, []any{}, stored["alice"]["favorites"])
	assert.NotContains(t, stored["alice"], "username")
}

func TestStore_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Register(ctx, "alice", "original", "a@example.com")
	require.NoError(t, err)
	require.NoError(t, s.SetFavorites(ctx, "alice", []string{"FRA"}))

	_, err = s.Register(ctx, "alice", "hijack", "b@example.com")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// Существующий аккаунт не изменился
	acc, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "original", acc.Password)
	assert.Equal(t, "a@example.com", acc.Email)
	assert.Equal(t, []string{"FRA"}, acc.Favorites)
}

func TestStore_Register_EmptyUsername(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Register(context.Background(), "", "pass", "")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}

func TestStore_Authenticate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Register(ctx, "alice", "Secret", "a@example.com")
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		username string
		password string
	}{
		{name: "correct credentials", username: "alice", password: "Secret"},
		{name: "wrong password", username: "alice", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "case sensitive password", username: "alice", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "bob", password: "Secret", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := s.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, acc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, acc.Username)
		})
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.Register(ctx, "alice", "pass", "")
	require.NoError(t, err)
	require.NoError(t, s.SetFavorites(ctx, "alice", []string{"USA"}))

	acc, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	acc.Favorites[0] = "XXX"

	again, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"USA"}, again.Favorites)
}

func TestStore_SetFavorites(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Register(ctx, "alice", "pass", "")
	require.NoError(t, err)

	require.NoError(t, s.SetFavorites(ctx, "alice", []string{"USA", "IND", "USA"}))
	acc, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"USA", "IND"}, acc.Favorites)

	err = s.SetFavorites(ctx, "ghost", []string{"USA"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Load_Empty(t *testing.T) {
	s, _ := newTestStore(t)
	table, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestStore_Load_Corrupted(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, kv.Set(ctx, storage.KeyUsers, []byte("{not json")))

	_, err := s.Load(ctx)
	assert.Error(t, err)

	// Повреждённая таблица не перезаписывается при регистрации
	_, err = s.Register(ctx, "alice", "pass", "")
	assert.Error(t, err)
	raw, err := kv.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestStore_Load_BrowserExport(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	// Формат, который пишет браузерная версия
	blob := `{"alice":{"password":"pw","email":"a@x.io","favorites":["USA","USA","IND"],"createdAt":"2024-01-02T03:04:05.000Z"}}`
	require.NoError(t, kv.Set(ctx, storage.KeyUsers, []byte(blob)))

	acc, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, []string{"USA", "IND"}, acc.Favorites)
	assert.Equal(t, 2024, acc.CreatedAt.Year())
}

func TestStore_SaveAndCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	table := Table{
		"bob":   &models.Account{Password: "b"},
		"alice": &models.Account{Password: "a"},
	}
	require.NoError(t, s.Save(ctx, table))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, loaded.Usernames())
}

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	errDisk := errors.New("disk failure")

	kv := &storage.KeyValueMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errDisk
		},
		UpdateFunc: func(ctx context.Context, key string, fn storage.UpdateFunc) error {
			return errDisk
		},
	}
	s := NewStore(kv)

	_, err := s.Get(ctx, "alice")
	assert.ErrorIs(t, err, errDisk)

	_, err = s.Register(ctx, "alice", "pass", "")
	assert.ErrorIs(t, err, errDisk)

	require.Len(t, kv.UpdateCalls(), 1)
	assert.Equal(t, storage.KeyUsers, kv.UpdateCalls()[0].Key)
}

func TestStore_UpdateAccount_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.Register(ctx, "alice", "pass", "")
	require.NoError(t, err)

	codes := []string{"USA", "IND", "FRA", "DEU", "JPN", "BRA", "CAN", "MEX"}
	done := make(chan struct{})
	for _, code := range codes {
		go func() {
			defer func() { done <- struct{}{} }()
			err := s.UpdateAccount(ctx, "alice", func(acc *models.Account) error {
				acc.Favorites = append(acc.Favorites, code)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	for range codes {
		<-done
	}

	acc, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, codes, acc.Favorites)
}
