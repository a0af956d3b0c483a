package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/countrybook/internal/client/account"
	"github.com/iudanet/countrybook/internal/client/auth"
	"github.com/iudanet/countrybook/internal/client/catalog"
	"github.com/iudanet/countrybook/internal/client/debounce"
	"github.com/iudanet/countrybook/internal/client/favorites"
	"github.com/iudanet/countrybook/internal/client/iocli"
	"github.com/iudanet/countrybook/internal/client/search"
	"github.com/iudanet/countrybook/internal/client/session"
	"github.com/iudanet/countrybook/internal/client/storage"
)

// ErrUnknownCommand команда не распознана
var ErrUnknownCommand = errors.New("unknown command")

// Deps are the services the commands run against.
type Deps struct {
	IO               iocli.IO
	Catalog          catalog.Catalog
	Accounts         *account.Store
	Sessions         *session.Manager
	Favorites        *favorites.Store
	Logger           *slog.Logger
	DebounceInterval time.Duration
	RequestTimeout   time.Duration
}

// Cli runs one command against local storage and the catalog.
type Cli struct {
	io        iocli.IO
	catalog   catalog.Catalog
	accounts  *account.Store
	sessions  *session.Manager
	favorites *favorites.Store
	auth      *auth.Service
	engine    *search.Engine
	logger    *slog.Logger
	debounce  time.Duration
	timeout   time.Duration
}

// New creates the command runner.
func New(deps Deps) *Cli {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = catalog.DefaultTimeout
	}
	interval := deps.DebounceInterval
	if interval <= 0 {
		interval = debounce.DefaultInterval
	}

	return &Cli{
		io:        deps.IO,
		catalog:   deps.Catalog,
		accounts:  deps.Accounts,
		sessions:  deps.Sessions,
		favorites: deps.Favorites,
		auth:      auth.NewService(deps.Accounts, deps.Sessions, logger),
		engine: search.NewEngine(deps.Catalog, deps.Favorites, deps.Sessions,
			search.WithFetchTimeout(timeout), search.WithLogger(logger)),
		logger:   logger,
		debounce: interval,
		timeout:  timeout,
	}
}

// NewDeps builds the stores on top of one key-value storage.
func NewDeps(kv storage.KeyValue, cat catalog.Catalog, io iocli.IO, logger *slog.Logger, opts ...session.Option) Deps {
	accounts := account.NewStore(kv, account.WithLogger(logger))
	return Deps{
		IO:        io,
		Catalog:   cat,
		Accounts:  accounts,
		Sessions:  session.NewManager(kv, append([]session.Option{session.WithLogger(logger)}, opts...)...),
		Favorites: favorites.NewStore(accounts, logger),
		Logger:    logger,
	}
}

// Close flushes session activity and ends subscriptions.
func (c *Cli) Close() {
	c.sessions.Close()
	c.favorites.Close()
}

// Run restores the saved session and executes command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	if _, err := c.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	}

	// любая команда в активной сессии считается активностью
	c.sessions.Activity(session.SignalKeyPress)

	switch command {
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "favorite":
		return c.runFavorite(ctx, args)
	case "favorites":
		return c.runFavorites(ctx)
	case "stats":
		return c.runStats(ctx)
	case "watch":
		return c.runWatch(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// requireSession возвращает имя пользователя активной сессии
func (c *Cli) requireSession() (string, error) {
	username, ok := c.sessions.Current()
	if !ok {
		return "", fmt.Errorf("%w. Please run 'countrybook login' first", session.ErrNotAuthenticated)
	}
	return username, nil
}

// PrintUsage печатает справку
func PrintUsage(io iocli.IO) {
	io.Println("Countrybook")
	io.Println()
	io.Println("Usage:")
	io.Println("  countrybook [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version           Show version information")
	io.Println("  --verbose           Enable debug logging")
	io.Println("  --catalog URL       Country catalog URL (default: https://restcountries.com/v3.1)")
	io.Println("  --db PATH           Path to local database (default: countrybook.db)")
	io.Println("  --storage DRIVER    Local storage: bolt, sqlite or memory (default: bolt)")
	io.Println("  --timeout DURATION  Catalog request timeout (default: 15s)")
	io.Println("  --debounce DURATION Search input debounce (default: 700ms)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register            Create an account and log in")
	io.Println("  login               Log in")
	io.Println("  logout              Log out")
	io.Println("  status              Show session status")
	io.Println("  list [FILTERS]      List countries")
	io.Println("  show <code>         Show country details")
	io.Println("  favorite <code>     Add or remove a favorite")
	io.Println("  favorites           List favorite countries")
	io.Println("  stats               Show world statistics")
	io.Println("  watch [FILTERS]     Interactive search")
	io.Println()
	io.Println("Filters:")
	io.Println("  --query TEXT        Common name contains TEXT")
	io.Println("  --region NAME       Exact region (Africa, Americas, Asia, Europe, Oceania)")
	io.Println("  --language NAME     Spoken language")
	io.Println("  --favorites         Only favorites of the logged-in user")
	io.Println("  --sort KEY          name-asc|name-desc|population-asc|population-desc|area-asc|area-desc")
	io.Println()
	io.Println("Watch input:")
	io.Println("  <text>              New query text (debounced)")
	io.Println("  :enter              Search now")
	io.Println("  :clear              Clear the query")
	io.Println("  :region NAME        Set region (empty clears)")
	io.Println("  :lang NAME          Set language (empty clears)")
	io.Println("  :sort KEY           Set sort (empty clears)")
	io.Println("  :fav                Toggle favorites-only")
	io.Println("  :star CODE          Add or remove a favorite")
	io.Println("  :quit               Leave")
}
