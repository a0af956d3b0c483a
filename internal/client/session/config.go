package session

import (
	"log/slog"
	"time"
)

const (
	// DefaultTimeout is the inactivity period after which a session expires
	DefaultTimeout = 30 * time.Minute
	// DefaultPollInterval is how often Run checks for expiry
	DefaultPollInterval = 10 * time.Second
	// DefaultActivityThrottle is the minimum time between activity writes
	DefaultActivityThrottle = time.Second
)

// Config holds session manager timing.
type Config struct {
	Timeout          time.Duration // idle timeout
	PollInterval     time.Duration // expiry check period
	ActivityThrottle time.Duration // min time between activity timestamp writes
}

func defaultConfig() Config {
	return Config{
		Timeout:          DefaultTimeout,
		PollInterval:     DefaultPollInterval,
		ActivityThrottle: DefaultActivityThrottle,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithTimeout sets the inactivity timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.cfg.Timeout = d
		}
	}
}

// WithPollInterval sets the expiry check period.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.cfg.PollInterval = d
		}
	}
}

// WithActivityThrottle sets the minimum time between activity writes.
func WithActivityThrottle(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.cfg.ActivityThrottle = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
