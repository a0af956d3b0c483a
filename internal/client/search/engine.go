// Package search builds the visible country list from filter criteria.
//
// A search picks one primary source by a fixed priority (name, region,
// language, full dataset), refines the primary list client-side, drops
// non-favorites when asked to and finally sorts. Failures never escape:
// they produce an empty Result with Err set.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/countrybook/internal/client/catalog"
	"github.com/iudanet/countrybook/internal/models"
)

// DefaultFetchTimeout bounds one scoped fetch.
const DefaultFetchTimeout = 15 * time.Second

// FavoritesSource lists the favorites of a user.
//
//go:generate moq -out favorites_mock.go . FavoritesSource
type FavoritesSource interface {
	List(ctx context.Context, username string) ([]string, error)
}

// UserSource reports who is logged in; empty means nobody.
type UserSource interface {
	Username() string
}

// Result is one settled recomputation.
type Result struct {
	Err       error
	RequestID string
	Countries []models.Country
	Criteria  Criteria
	Source    Source
	Seq       uint64
}

// Engine runs searches against the catalog.
type Engine struct {
	catalog   catalog.Catalog
	favorites FavoritesSource
	users     UserSource
	logger    *slog.Logger
	dataset   []models.Country
	timeout   time.Duration
	mu        sync.RWMutex
	loaded    bool
}

// EngineOption configures Engine.
type EngineOption func(*Engine)

// WithFetchTimeout bounds every catalog call made by a search.
func WithFetchTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a search engine.
func NewEngine(cat catalog.Catalog, favorites FavoritesSource, users UserSource, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:   cat,
		favorites: favorites,
		users:     users,
		logger:    slog.Default(),
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDataset replaces the loaded full dataset.
func (e *Engine) SetDataset(countries []models.Country) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dataset = countries
	e.loaded = true
}

// Dataset returns the full dataset, fetching it on first use.
// A failed fetch is not cached.
func (e *Engine) Dataset(ctx context.Context) ([]models.Country, error) {
	e.mu.RLock()
	if e.loaded {
		ds := e.dataset
		e.mu.RUnlock()
		return ds, nil
	}
	e.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	countries, err := e.catalog.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		e.dataset = countries
		e.loaded = true
	}
	return e.dataset, nil
}

// Search computes the result set for c.
func (e *Engine) Search(ctx context.Context, c Criteria) Result {
	c = c.Normalize()
	strategy := SelectStrategy(c)
	res := Result{Criteria: c, Source: strategy.Source}

	primary, err := e.primary(ctx, strategy.Source, c)
	if err != nil {
		return e.fail(ctx, res, err)
	}

	countries := Refine(primary, c, strategy.Refine)

	if c.FavoritesOnly {
		countries, err = e.onlyFavorites(ctx, countries)
		if err != nil {
			return e.fail(ctx, res, err)
		}
	}

	Sort(countries, c.Sort)
	res.Countries = countries
	return res
}

func (e *Engine) primary(ctx context.Context, source Source, c Criteria) ([]models.Country, error) {
	if source == SourceDataset {
		return e.Dataset(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	switch source {
	case SourceName:
		return e.catalog.FetchByName(ctx, c.Query)
	case SourceRegion:
		return e.catalog.FetchByRegion(ctx, c.Region)
	case SourceLanguage:
		return e.catalog.FetchByLanguage(ctx, c.Language)
	default:
		return nil, fmt.Errorf("unsupported source %s", source)
	}
}

func (e *Engine) onlyFavorites(ctx context.Context, countries []models.Country) ([]models.Country, error) {
	username := ""
	if e.users != nil {
		username = e.users.Username()
	}
	if username == "" || e.favorites == nil {
		return []models.Country{}, nil
	}

	favs, err := e.favorites.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return OnlyFavorites(countries, favs), nil
}

func (e *Engine) fail(ctx context.Context, res Result, err error) Result {
	res.Err = err
	res.Countries = []models.Country{}

	level := slog.LevelWarn
	if catalog.IsNotFound(err) || ctx.Err() != nil {
		// пустая выдача каталога и отмененный запрос ожидаемы
		level = slog.LevelDebug
	}
	e.logger.Log(ctx, level, "search failed",
		"source", res.Source.String(),
		"query", res.Criteria.Query,
		"region", res.Criteria.Region,
		"language", res.Criteria.Language,
		"error", err,
	)
	return res
}
