package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/countrybook/internal/models"
)

// Controller reruns the search whenever criteria or the dataset change
// and delivers only the result of the latest request.
//
// Every Submit cancels the in-flight search it supersedes. A result that
// still completes for an older sequence number is dropped, so readers of
// Results never see an intermediate list. Results holds at most one
// undelivered value; a newer result replaces it.
type Controller struct {
	engine   *Engine
	logger   *slog.Logger
	results  chan Result
	cancel   context.CancelFunc
	criteria Criteria
	wg       sync.WaitGroup
	seq      uint64
	mu       sync.Mutex
	closed   bool
}

// NewController creates a controller on top of engine.
func NewController(engine *Engine, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		engine:  engine,
		logger:  logger,
		results: make(chan Result, 1),
	}
}

// Results delivers settled results. It is closed by Close.
func (c *Controller) Results() <-chan Result {
	return c.results
}

// Criteria returns the last submitted criteria.
func (c *Controller) Criteria() Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Submit starts a recomputation for criteria and returns its sequence.
func (c *Controller) Submit(criteria Criteria) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.criteria = criteria
	return c.startLocked()
}

// Update applies fn to the current criteria and submits the result.
func (c *Controller) Update(fn func(*Criteria)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.criteria)
	return c.startLocked()
}

// Refresh reruns the current criteria.
func (c *Controller) Refresh() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked()
}

// SetDataset replaces the base dataset and recomputes.
func (c *Controller) SetDataset(countries []models.Country) uint64 {
	c.engine.SetDataset(countries)
	return c.Refresh()
}

// Close cancels the in-flight search and closes Results.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()
	close(c.results)
}

func (c *Controller) startLocked() uint64 {
	if c.closed {
		return c.seq
	}
	if c.cancel != nil {
		c.cancel()
	}

	c.seq++
	seq := c.seq
	criteria := c.criteria
	requestID := uuid.NewString()

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		c.run(ctx, seq, requestID, criteria)
	}()
	return seq
}

func (c *Controller) run(ctx context.Context, seq uint64, requestID string, criteria Criteria) {
	start := time.Now()
	res := c.engine.Search(ctx, criteria)
	res.Seq = seq
	res.RequestID = requestID

	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		c.logger.Debug("stale search result dropped", "request_id", requestID, "seq", seq)
		return
	}

	// Недочитанный результат заменяем свежим; отправка под mu не блокирует
	select {
	case <-c.results:
	default:
	}
	c.results <- res
	c.mu.Unlock()

	c.logger.Debug("search settled",
		"request_id", requestID,
		"seq", seq,
		"source", res.Source.String(),
		"count", len(res.Countries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
