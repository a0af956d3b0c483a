package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSortKey сортировка не распознана
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortField is the attribute a result set is ordered by.
type SortField string

// Sortable fields
const (
	FieldName       SortField = "name"
	FieldPopulation SortField = "population"
	FieldArea       SortField = "area"
)

// SortKey is a single (field, direction) pair. The zero value means
// "keep the order of the source".
type SortKey struct {
	Field SortField
	Desc  bool
}

// ParseSortKey parses "name-asc", "population-desc" and friends.
// An empty string yields the zero SortKey.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return SortKey{}, nil
	}

	field, dir, ok := strings.Cut(s, "-")
	if !ok {
		return SortKey{}, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}

	key := SortKey{Field: SortField(field)}
	switch key.Field {
	case FieldName, FieldPopulation, FieldArea:
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}

	switch dir {
	case "asc":
	case "desc":
		key.Desc = true
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
	return key, nil
}

// IsZero reports whether no sort is requested.
func (k SortKey) IsZero() bool {
	return k.Field == ""
}

func (k SortKey) String() string {
	if k.IsZero() {
		return ""
	}
	if k.Desc {
		return string(k.Field) + "-desc"
	}
	return string(k.Field) + "-asc"
}

// Criteria is the full set of filters applied to the country list.
type Criteria struct {
	Query         string
	Region        string
	Language      string
	Sort          SortKey
	FavoritesOnly bool
}

// Normalize trims whitespace around the text criteria.
func (c Criteria) Normalize() Criteria {
	c.Query = strings.TrimSpace(c.Query)
	c.Region = strings.TrimSpace(c.Region)
	c.Language = strings.TrimSpace(c.Language)
	return c
}
