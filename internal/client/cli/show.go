package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/countrybook/internal/client/catalog"
	"github.com/iudanet/countrybook/internal/client/format"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing country code. Usage: countrybook show <code>")
	}
	code := strings.ToUpper(strings.TrimSpace(args[0]))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	countries, err := c.catalog.FetchByCode(ctx, code)
	if err != nil {
		if catalog.IsNotFound(err) {
			return fmt.Errorf("country %s not found", code)
		}
		return fmt.Errorf("failed to load country: %w", err)
	}
	if len(countries) == 0 {
		return fmt.Errorf("country %s not found", code)
	}
	country := &countries[0]

	c.io.Printf("=== %s ===\n", country.CommonName)
	c.io.Println()
	c.io.Printf("Official name: %s\n", country.OfficialName)
	c.io.Printf("Code:          %s\n", country.Code)
	c.io.Printf("Capital:       %s\n", valueOr(country.Capital(), "n/a"))
	c.io.Printf("Region:        %s\n", joinNonEmpty(" / ", country.Region, country.Subregion))
	c.io.Printf("Population:    %s\n", format.Number(country.Population))
	c.io.Printf("Area:          %s\n", format.Area(country.AreaKm2))
	c.io.Printf("Languages:     %s\n", valueOr(format.Languages(country), "n/a"))
	c.io.Printf("Currencies:    %s\n", valueOr(format.Currencies(country), "n/a"))
	c.io.Printf("Borders:       %s\n", valueOr(strings.Join(country.Borders, ", "), "none"))
	c.io.Printf("Flag:          %s\n", country.FlagImageURL)

	if len(country.Timezones) > 0 {
		c.io.Println()
		c.io.Println("Local time:")
		now := time.Now()
		for _, tz := range country.Timezones {
			c.io.Printf("  %-10s %s\n", tz, format.LocalTime(now, tz).Format("Mon 15:04"))
		}
	}

	if username, ok := c.sessions.Current(); ok {
		fav, err := c.favorites.IsFavorite(ctx, username, country.Code)
		if err != nil {
			return err
		}
		c.io.Println()
		if fav {
			c.io.Println("★ In your favorites")
		} else {
			c.io.Printf("Run 'countrybook favorite %s' to add it to favorites.\n", country.Code)
		}
	}
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
