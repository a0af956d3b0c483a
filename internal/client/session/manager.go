package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/countrybook/internal/broadcast"
	"github.com/iudanet/countrybook/internal/client/storage"
)

// Manager tracks the logged-in username and the rolling last-activity time.
//
// Expiry is detected by polling (Check, or Run on a ticker), so a session
// is reported active for up to one poll interval after its true timeout.
type Manager struct {
	kv       storage.KeyValue
	logger   *slog.Logger
	now      func() time.Time
	changes  *broadcast.Broadcaster[State]
	pending  *time.Timer // отложенная запись activity (throttle)
	username string
	cfg      Config
	state    State
	mu       sync.Mutex
}

// NewManager creates a session manager in the anonymous state.
// Call Restore to pick up a saved session.
func NewManager(kv storage.KeyValue, opts ...Option) *Manager {
	m := &Manager{
		kv:      kv,
		logger:  slog.Default(),
		now:     time.Now,
		changes: broadcast.New[State](8),
		cfg:     defaultConfig(),
		state:   StateAnonymous,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the effective timing configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Restore honours a saved session only when both the username and the
// activity timestamp are present and the timeout has not elapsed.
// Otherwise both keys are discarded.
func (m *Manager) Restore(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username, err := m.readUser(ctx)
	if err != nil {
		return m.state, err
	}
	last, ok, err := m.readLastActivity(ctx)
	if err != nil {
		return m.state, err
	}

	if username != "" && ok && m.now().Sub(last) < m.cfg.Timeout {
		m.username = username
		m.setState(StateActive)
		m.logger.Debug("session restored", "username", username)
		return m.state, nil
	}

	if err := m.clear(ctx); err != nil {
		return m.state, err
	}
	m.setState(StateAnonymous)
	return m.state, nil
}

// Login records username and the current time as last activity.
func (m *Manager) Login(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.kv.Set(ctx, storage.KeyUser, []byte(username)); err != nil {
		return fmt.Errorf("failed to save session user: %w", err)
	}
	if err := m.writeLastActivity(ctx, m.now()); err != nil {
		return err
	}

	m.username = username
	m.setState(StateActive)
	m.logger.Info("session started", "username", username)
	return nil
}

// Logout ends the session. Logging out while anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.endLocked(ctx, "logout")
}

// Current returns the logged-in username while the session is active.
func (m *Manager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateActive {
		return "", false
	}
	return m.username, true
}

// Username implements the "who is logged in" source for other stores.
// It returns an empty string when no session is active.
func (m *Manager) Username() string {
	username, _ := m.Current()
	return username
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LastActivity returns the stored activity timestamp.
func (m *Manager) LastActivity(ctx context.Context) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readLastActivity(ctx)
}

// Remaining returns the time left before the session times out.
func (m *Manager) Remaining(ctx context.Context) (time.Duration, error) {
	last, ok, err := m.LastActivity(ctx)
	if err != nil {
		return 0, err
	}
	if !ok || m.State() != StateActive {
		return 0, ErrNotAuthenticated
	}
	if left := m.cfg.Timeout - m.now().Sub(last); left > 0 {
		return left, nil
	}
	return 0, nil
}

// Activity reports a user-interaction signal. Writes of the activity
// timestamp are throttled: the first signal arms a timer and the write
// happens when it fires, signals in between are absorbed.
func (m *Manager) Activity(signal Signal) {
	if !signal.valid() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateActive || m.pending != nil {
		return
	}
	m.pending = time.AfterFunc(m.cfg.ActivityThrottle, m.flushActivity)
}

func (m *Manager) flushActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = nil
	if m.state != StateActive {
		return
	}
	if err := m.writeLastActivity(context.Background(), m.now()); err != nil {
		m.logger.Error("failed to refresh activity timestamp", "error", err)
	}
}

// Check performs one expiry poll. The timestamp is re-read from storage so
// activity recorded by another client of the same storage counts.
func (m *Manager) Check(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateActive {
		return m.state, nil
	}

	last, ok, err := m.readLastActivity(ctx)
	if err != nil {
		return m.state, err
	}
	if !ok || m.now().Sub(last) < m.cfg.Timeout {
		return m.state, nil
	}

	m.setState(StateExpired)
	if err := m.endLocked(ctx, "inactivity timeout"); err != nil {
		return m.state, err
	}
	return m.state, nil
}

// Run polls for expiry every PollInterval until ctx is done.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.Check(ctx); err != nil {
				m.logger.Error("session check failed", "error", err)
			}
		}
	}
}

// Changes streams state transitions (active/anonymous) until ctx is done.
func (m *Manager) Changes(ctx context.Context) <-chan State {
	return m.changes.Subscribe(ctx)
}

// Close writes a pending throttled activity right away and ends change
// subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.pending != nil && m.pending.Stop() {
		m.pending = nil
		if m.state == StateActive {
			if err := m.writeLastActivity(context.Background(), m.now()); err != nil {
				m.logger.Error("failed to flush activity timestamp", "error", err)
			}
		}
	}
	m.mu.Unlock()
	m.changes.Close()
}

func (m *Manager) endLocked(ctx context.Context, reason string) error {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}

	if err := m.clear(ctx); err != nil {
		return err
	}

	if m.username != "" {
		m.logger.Info("session ended", "username", m.username, "reason", reason)
	}
	m.username = ""
	m.setState(StateAnonymous)
	return nil
}

// setState публикует только устойчивые переходы, expired наружу не виден
func (m *Manager) setState(s State) {
	if m.state == s {
		return
	}
	m.state = s
	if s != StateExpired {
		m.changes.Publish(s)
	}
}

func (m *Manager) clear(ctx context.Context) error {
	if err := m.kv.Delete(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("failed to delete session user: %w", err)
	}
	if err := m.kv.Delete(ctx, storage.KeyLastActivity); err != nil {
		return fmt.Errorf("failed to delete activity timestamp: %w", err)
	}
	return nil
}

func (m *Manager) readUser(ctx context.Context) (string, error) {
	data, err := m.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session user: %w", err)
	}
	return string(data), nil
}

func (m *Manager) readLastActivity(ctx context.Context) (time.Time, bool, error) {
	data, err := m.kv.Get(ctx, storage.KeyLastActivity)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read activity timestamp: %w", err)
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Нечитаемое значение равносильно отсутствию
		m.logger.Warn("invalid activity timestamp", "value", string(data))
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

func (m *Manager) writeLastActivity(ctx context.Context, t time.Time) error {
	value := strconv.FormatInt(t.UnixMilli(), 10)
	if err := m.kv.Set(ctx, storage.KeyLastActivity, []byte(value)); err != nil {
		return fmt.Errorf("failed to save activity timestamp: %w", err)
	}
	return nil
}
