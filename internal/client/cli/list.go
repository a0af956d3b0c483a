package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/iudanet/countrybook/internal/client/format"
	"github.com/iudanet/countrybook/internal/client/search"
	"github.com/iudanet/countrybook/internal/models"
)

// parseCriteria разбирает флаги фильтров list/watch
func parseCriteria(name string, args []string) (search.Criteria, error) {
	var criteria search.Criteria
	var sortKey string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&criteria.Query, "query", "", "Common name contains")
	fs.StringVar(&criteria.Region, "region", "", "Exact region")
	fs.StringVar(&criteria.Language, "language", "", "Spoken language")
	fs.BoolVar(&criteria.FavoritesOnly, "favorites", false, "Only favorites")
	fs.StringVar(&sortKey, "sort", "", "Sort key")

	if err := fs.Parse(args); err != nil {
		return criteria, fmt.Errorf("invalid %s arguments: %w", name, err)
	}
	if fs.NArg() > 0 {
		return criteria, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	key, err := search.ParseSortKey(sortKey)
	if err != nil {
		return criteria, err
	}
	criteria.Sort = key
	return criteria.Normalize(), nil
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	criteria, err := parseCriteria("list", args)
	if err != nil {
		return err
	}

	if criteria.FavoritesOnly {
		if _, ok := c.sessions.Current(); !ok {
			c.io.Println("Log in to see favorites.")
		}
	}

	res := c.engine.Search(ctx, criteria)
	c.printResult(ctx, res)
	return nil
}

func (c *Cli) printResult(ctx context.Context, res search.Result) {
	c.io.Printf("=== Countries (%d) ===\n", len(res.Countries))
	c.io.Println()

	if len(res.Countries) == 0 {
		c.io.Println("No countries found.")
		return
	}

	favs := c.currentFavorites(ctx)
	for i := range res.Countries {
		c.printRow(&res.Countries[i], slices.Contains(favs, res.Countries[i].Code))
	}
}

func (c *Cli) printRow(country *models.Country, favorite bool) {
	mark := " "
	if favorite {
		mark = "★"
	}
	c.io.Printf("%s %-3s  %-32s %-10s %15s\n",
		mark,
		country.Code,
		country.CommonName,
		country.Region,
		format.Number(country.Population),
	)
}

// currentFavorites избранное текущего пользователя, пусто без сессии
func (c *Cli) currentFavorites(ctx context.Context) []string {
	username, ok := c.sessions.Current()
	if !ok {
		return nil
	}
	favs, err := c.favorites.List(ctx, username)
	if err != nil {
		c.logger.Warn("failed to load favorites", "username", username, "error", err)
		return nil
	}
	return favs
}
