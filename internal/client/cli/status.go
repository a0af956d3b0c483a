package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	username, ok := c.sessions.Current()
	if !ok {
		c.io.Println("Status: Not logged in")
		c.io.Println()
		c.io.Println("Run 'countrybook login' to log in.")
		return nil
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("Username: %s\n", username)

	last, found, err := c.sessions.LastActivity(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if found {
		c.io.Printf("Last activity: %s\n", last.Format(time.RFC3339))
	}

	remaining, err := c.sessions.Remaining(ctx)
	if err == nil {
		c.io.Printf("Expires in: %s\n", remaining.Round(time.Second))
	}

	count, err := c.favorites.Count(ctx, username)
	if err != nil {
		return err
	}
	c.io.Printf("Favorites: %d\n", count)
	return nil
}
