package account

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iudanet/countrybook/internal/models"
)

// Table is the whole account mapping as it is persisted under the "users"
// key. It is always read and written as one value.
type Table map[string]*models.Account

// decodeTable parses a stored blob. Missing or empty blobs yield an empty table.
func decodeTable(data []byte) (Table, error) {
	table := Table{}
	if len(data) == 0 {
		return table, nil
	}

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account table: %w", err)
	}

	for username, acc := range table {
		if acc == nil {
			delete(table, username)
			continue
		}
		acc.Username = username
		acc.Favorites = models.NormalizeFavorites(acc.Favorites)
	}
	return table, nil
}

func encodeTable(table Table) ([]byte, error) {
	if table == nil {
		table = Table{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account table: %w", err)
	}
	return data, nil
}

// Usernames returns the table keys in lexical order.
func (t Table) Usernames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t Table) clone(username string) *models.Account {
	acc, ok := t[username]
	if !ok {
		return nil
	}
	cp := *acc
	cp.Favorites = append([]string(nil), acc.Favorites...)
	return &cp
}
