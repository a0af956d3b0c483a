package search

import (
	"cmp"
	"slices"

	"github.com/iudanet/countrybook/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders countries in place by key. The sort is stable: ties keep
// their input order. A zero key leaves the slice untouched.
func Sort(countries []models.Country, key SortKey) {
	if key.IsZero() {
		return
	}

	var compare func(a, b *models.Country) int
	switch key.Field {
	case FieldName:
		// Collator не потокобезопасен, создаем на каждый вызов
		col := collate.New(language.English)
		compare = func(a, b *models.Country) int {
			return col.CompareString(a.CommonName, b.CommonName)
		}
	case FieldPopulation:
		compare = func(a, b *models.Country) int {
			return cmp.Compare(a.Population, b.Population)
		}
	case FieldArea:
		compare = func(a, b *models.Country) int {
			return cmp.Compare(a.AreaKm2, b.AreaKm2)
		}
	default:
		return
	}

	slices.SortStableFunc(countries, func(a, b models.Country) int {
		if key.Desc {
			return compare(&b, &a)
		}
		return compare(&a, &b)
	})
}
