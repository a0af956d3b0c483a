// Package config loads client settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config настройки клиента
type Config struct {
	CatalogURL          string        `env:"COUNTRYBOOK_CATALOG_URL" envDefault:"https://restcountries.com/v3.1"`
	DBPath              string        `env:"COUNTRYBOOK_DB" envDefault:"countrybook.db"`
	StorageDriver       string        `env:"COUNTRYBOOK_STORAGE" envDefault:"bolt"`
	LogLevel            string        `env:"COUNTRYBOOK_LOG_LEVEL" envDefault:"info"`
	RequestTimeout      time.Duration `env:"COUNTRYBOOK_REQUEST_TIMEOUT" envDefault:"15s"`
	SessionTimeout      time.Duration `env:"COUNTRYBOOK_SESSION_TIMEOUT" envDefault:"30m"`
	SessionPollInterval time.Duration `env:"COUNTRYBOOK_SESSION_POLL" envDefault:"10s"`
	ActivityThrottle    time.Duration `env:"COUNTRYBOOK_ACTIVITY_THROTTLE" envDefault:"1s"`
	DebounceInterval    time.Duration `env:"COUNTRYBOOK_DEBOUNCE" envDefault:"700ms"`

	// только из флагов
	ShowVersion bool
	Verbose     bool
}

// Load reads .env from the working directory (if present), the process
// environment and args. It returns the remaining positional arguments.
func Load(args []string) (*Config, []string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return Parse(args, env.ToMap(os.Environ()), os.Stderr)
}

// Parse builds the config from an explicit environment and args.
// Flag errors and usage go to output.
func Parse(args []string, environ map[string]string, output io.Writer) (*Config, []string, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fset := flag.NewFlagSet("countrybook", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fset.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
	fset.StringVar(&cfg.CatalogURL, "catalog", cfg.CatalogURL, "Country catalog base URL")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local database")
	fset.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Local storage driver: bolt, sqlite or memory")
	fset.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Catalog request timeout")
	fset.DurationVar(&cfg.DebounceInterval, "debounce", cfg.DebounceInterval, "Search input debounce interval")

	if err := fset.Parse(args); err != nil {
		return nil, nil, err
	}

	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fset.Args(), nil
}

// Validate checks enumerations and durations.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverBolt, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.SessionTimeout <= 0 || c.SessionPollInterval <= 0 {
		return fmt.Errorf("session timeout and poll interval must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// SlogLevel converts LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger creates the stderr text logger at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
