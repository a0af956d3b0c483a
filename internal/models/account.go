package models

import (
	"slices"
	"time"
)

// Account представляет зарегистрированного пользователя в локальном хранилище.
// Username является ключом в таблице аккаунтов и в JSON не сериализуется.
type Account struct {
	CreatedAt time.Time `json:"createdAt"` // время регистрации
	Username  string    `json:"-"`         // уникальный username (ключ таблицы)
	Password  string    `json:"password"`  // пароль в открытом виде, сравнивается на равенство
	Email     string    `json:"email"`
	Favorites []string  `json:"favorites"` // коды стран (cca3) без дубликатов
}

// HasFavorite reports whether code is in the account's favorites.
func (a *Account) HasFavorite(code string) bool {
	return slices.Contains(a.Favorites, code)
}

// NormalizeFavorites removes duplicates keeping the first occurrence order.
// It never returns nil so the stored JSON is always an array.
func NormalizeFavorites(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
