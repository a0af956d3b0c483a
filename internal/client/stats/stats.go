// Package stats computes dashboard aggregates over the country list.
package stats

import (
	"cmp"
	"slices"

	"github.com/iudanet/countrybook/internal/models"
)

// TopN число позиций в топах языков и валют
const TopN = 5

// Count is a name with its frequency.
type Count struct {
	Name  string
	Value int64
}

// Summary сводка для dashboard
type Summary struct {
	Regions            []Count // число стран по регионам, по убыванию
	PopulationByRegion []Count // население по регионам, по убыванию
	TopLanguages       []Count
	TopCurrencies      []Count
	Countries          int
	TotalPopulation    int64
	AvgPopulation      int64
	Independent        int
	UNMembers          int
	Users              int
}

// Compute builds the summary for countries and the registered user count.
func Compute(countries []models.Country, users int) Summary {
	regions := map[string]int64{}
	population := map[string]int64{}
	languages := map[string]int64{}
	currencies := map[string]int64{}

	s := Summary{Countries: len(countries), Users: users}
	for i := range countries {
		c := &countries[i]
		regions[c.Region]++
		population[c.Region] += c.Population
		s.TotalPopulation += c.Population

		for _, name := range c.Languages {
			languages[name]++
		}
		for code := range c.Currencies {
			currencies[code]++
		}
		if c.Independent {
			s.Independent++
		}
		if c.UNMember {
			s.UNMembers++
		}
	}

	if len(countries) > 0 {
		s.AvgPopulation = s.TotalPopulation / int64(len(countries))
	}
	s.Regions = ranked(regions, 0)
	s.PopulationByRegion = ranked(population, 0)
	s.TopLanguages = ranked(languages, TopN)
	s.TopCurrencies = ranked(currencies, TopN)
	return s
}

// TopRegions returns up to n regions ordered by country count.
// A non-positive n returns all of them.
func TopRegions(countries []models.Country, n int) []string {
	counts := map[string]int64{}
	for i := range countries {
		if countries[i].Region != "" {
			counts[countries[i].Region]++
		}
	}
	return names(ranked(counts, n))
}

// TopLanguages returns up to n language names ordered by how many
// countries list them.
func TopLanguages(countries []models.Country, n int) []string {
	counts := map[string]int64{}
	for i := range countries {
		for _, name := range countries[i].Languages {
			counts[name]++
		}
	}
	return names(ranked(counts, n))
}

// ranked сортирует по убыванию значения, при равенстве по имени
func ranked(m map[string]int64, limit int) []Count {
	out := make([]Count, 0, len(m))
	for name, v := range m {
		out = append(out, Count{Name: name, Value: v})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func names(counts []Count) []string {
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		out = append(out, c.Name)
	}
	return out
}
