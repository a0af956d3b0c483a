package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/countrybook/internal/client/format"
	"github.com/iudanet/countrybook/internal/client/stats"
)

func (c *Cli) runStats(ctx context.Context) error {
	countries, err := c.engine.Dataset(ctx)
	if err != nil {
		return err
	}
	users, err := c.accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	s := stats.Compute(countries, users)

	c.io.Println("=== World Statistics ===")
	c.io.Println()
	c.io.Printf("Countries:          %d\n", s.Countries)
	c.io.Printf("Total population:   %s\n", format.Number(s.TotalPopulation))
	c.io.Printf("Average population: %s\n", format.Number(s.AvgPopulation))
	c.io.Printf("Independent:        %d\n", s.Independent)
	c.io.Printf("UN members:         %d\n", s.UNMembers)
	c.io.Printf("Registered users:   %d\n", s.Users)

	c.printCounts("Countries by region", s.Regions, false)
	c.printCounts("Population by region", s.PopulationByRegion, true)
	c.printCounts("Top languages", s.TopLanguages, false)
	c.printCounts("Top currencies", s.TopCurrencies, false)
	return nil
}

func (c *Cli) printCounts(title string, counts []stats.Count, number bool) {
	c.io.Println()
	c.io.Printf("%s:\n", title)
	for _, item := range counts {
		name := item.Name
		if name == "" {
			name = "(none)"
		}
		if number {
			c.io.Printf("  %-20s %s\n", name, format.Number(item.Value))
		} else {
			c.io.Printf("  %-20s %d\n", name, item.Value)
		}
	}
}
