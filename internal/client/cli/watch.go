package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/iudanet/countrybook/internal/client/debounce"
	"github.com/iudanet/countrybook/internal/client/search"
	"github.com/iudanet/countrybook/internal/client/session"
)

// inputLine одна строка ввода или ошибка чтения
type inputLine struct {
	err  error
	text string
}

// runWatch is the interactive view: every input line is the new query
// text, debounced before it reaches the search. Lines starting with ':'
// are commands. Results, favorite changes and session expiry are handled
// as they arrive.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	criteria, err := parseCriteria("watch", args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := search.NewController(c.engine, c.logger)
	defer ctrl.Close()

	deb := debounce.New(c.debounce, func(query string) {
		ctrl.Update(func(cr *search.Criteria) { cr.Query = query })
	})
	defer deb.Stop()

	go func() {
		if err := c.sessions.Run(ctx); err != nil {
			c.logger.Error("session poll stopped", "error", err)
		}
	}()

	favChanges := c.favorites.Subscribe(ctx)
	sessionChanges := c.sessions.Changes(ctx)
	lines := c.readLines(ctx)

	c.io.Println("=== Watch ===")
	c.io.Println("Type to search, ':quit' to leave.")
	ctrl.Submit(criteria)

	for {
		select {
		case <-ctx.Done():
			return nil

		case res, ok := <-ctrl.Results():
			if !ok {
				return nil
			}
			c.printResult(ctx, res)

		case _, ok := <-favChanges:
			if !ok {
				favChanges = nil
				continue
			}
			ctrl.Refresh()

		case state, ok := <-sessionChanges:
			if !ok {
				sessionChanges = nil
				continue
			}
			if state == session.StateAnonymous {
				c.io.Println("Session ended. Log in again to manage favorites.")
			}
			ctrl.Refresh()

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if line.err != nil {
				if errors.Is(line.err, io.EOF) {
					return nil
				}
				return line.err
			}

			c.sessions.Activity(session.SignalKeyPress)
			if quit := c.handleWatchLine(ctx, line.text, ctrl, deb); quit {
				return nil
			}
		}
	}
}

// handleWatchLine применяет одну строку ввода; true означает выход
func (c *Cli) handleWatchLine(ctx context.Context, text string, ctrl *search.Controller, deb *debounce.Debouncer[string]) bool {
	if !strings.HasPrefix(text, ":") {
		if strings.TrimSpace(text) == "" {
			deb.Clear("")
			return false
		}
		deb.Change(text)
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(text, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "quit", "q":
		return true
	case "enter":
		deb.Commit()
	case "clear":
		deb.Clear("")
	case "region":
		ctrl.Update(func(cr *search.Criteria) { cr.Region = arg })
	case "lang", "language":
		ctrl.Update(func(cr *search.Criteria) { cr.Language = arg })
	case "sort":
		key, err := search.ParseSortKey(arg)
		if err != nil {
			c.io.Printf("Unknown sort %q\n", arg)
			return false
		}
		ctrl.Update(func(cr *search.Criteria) { cr.Sort = key })
	case "fav", "favorites":
		ctrl.Update(func(cr *search.Criteria) { cr.FavoritesOnly = !cr.FavoritesOnly })
	case "star":
		if err := c.runFavorite(ctx, []string{arg}); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	default:
		c.io.Printf("Unknown command :%s\n", cmd)
	}
	return false
}

// readLines читает ввод в отдельной горутине
func (c *Cli) readLines(ctx context.Context) <-chan inputLine {
	out := make(chan inputLine)
	go func() {
		defer close(out)
		for {
			text, err := c.io.ReadLine()
			select {
			case out <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return out
}
