package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/countrybook/internal/client/search"
)

func (c *Cli) runFavorite(ctx context.Context, args []string) error {
	username, err := c.requireSession()
	if err != nil {
		return err
	}
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("missing country code. Usage: countrybook favorite <code>")
	}
	code := strings.ToUpper(strings.TrimSpace(args[0]))

	added, err := c.favorites.Toggle(ctx, username, code)
	if err != nil {
		return err
	}
	if added {
		c.io.Printf("★ Added %s to favorites\n", code)
	} else {
		c.io.Printf("✓ Removed %s from favorites\n", code)
	}
	return nil
}

func (c *Cli) runFavorites(ctx context.Context) error {
	username, err := c.requireSession()
	if err != nil {
		return err
	}

	codes, err := c.favorites.List(ctx, username)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		c.io.Println("No favorites yet.")
		c.io.Println()
		c.io.Println("Use 'countrybook favorite <code>' to add one.")
		return nil
	}

	res := c.engine.Search(ctx, search.Criteria{
		FavoritesOnly: true,
		Sort:          search.SortKey{Field: search.FieldName},
	})
	if res.Err != nil {
		// каталог недоступен, показываем хотя бы коды
		c.io.Printf("=== Favorites (%d) ===\n", len(codes))
		c.io.Println()
		for _, code := range codes {
			c.io.Printf("★ %s\n", code)
		}
		return nil
	}

	c.io.Printf("=== Favorites (%d) ===\n", len(res.Countries))
	c.io.Println()
	for i := range res.Countries {
		c.printRow(&res.Countries[i], true)
	}
	return nil
}
