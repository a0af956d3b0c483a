package search

import (
	"slices"
	"strings"

	"github.com/iudanet/countrybook/internal/models"
)

// Refine applies the client-side filters selected by r. The input slice
// is not modified.
func Refine(countries []models.Country, c Criteria, r Refinement) []models.Country {
	query := strings.ToLower(c.Query)

	out := make([]models.Country, 0, len(countries))
	for i := range countries {
		country := &countries[i]
		if r.Query && query != "" && !strings.Contains(strings.ToLower(country.CommonName), query) {
			continue
		}
		if r.Region && c.Region != "" && country.Region != c.Region {
			continue
		}
		if r.Language && c.Language != "" && !country.SpeaksLanguage(c.Language) {
			continue
		}
		out = append(out, *country)
	}
	return out
}

// OnlyFavorites keeps the countries whose code is in favorites.
func OnlyFavorites(countries []models.Country, favorites []string) []models.Country {
	out := make([]models.Country, 0, len(favorites))
	for i := range countries {
		if slices.Contains(favorites, countries[i].Code) {
			out = append(out, countries[i])
		}
	}
	return out
}
