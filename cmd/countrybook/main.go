package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/countrybook/internal/client/catalog"
	"github.com/iudanet/countrybook/internal/client/cli"
	"github.com/iudanet/countrybook/internal/client/iocli"
	"github.com/iudanet/countrybook/internal/client/session"
	"github.com/iudanet/countrybook/internal/client/storage"
	"github.com/iudanet/countrybook/internal/client/storage/boltdb"
	"github.com/iudanet/countrybook/internal/client/storage/memory"
	"github.com/iudanet/countrybook/internal/client/storage/sqlite"
	"github.com/iudanet/countrybook/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(iocli.NewStdio())
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	if len(args) == 0 {
		cli.PrintUsage(iocli.NewStdio())
		return 1
	}
	command := args[0]

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	// Ctrl+C завершает watch штатно
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	catalogClient := catalog.NewClient(cfg.CatalogURL,
		catalog.WithTimeout(cfg.RequestTimeout),
		catalog.WithLogger(logger),
	)

	deps := cli.NewDeps(kv, catalogClient, iocli.NewStdio(), logger,
		session.WithTimeout(cfg.SessionTimeout),
		session.WithPollInterval(cfg.SessionPollInterval),
		session.WithActivityThrottle(cfg.ActivityThrottle),
	)
	deps.DebounceInterval = cfg.DebounceInterval
	deps.RequestTimeout = cfg.RequestTimeout

	app := cli.New(deps)
	defer app.Close()

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(iocli.NewStdio())
		}
		return 1
	}
	return 0
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KeyValue, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return boltdb.New(ctx, cfg.DBPath)
	}
}

func printVersion() {
	fmt.Printf("Countrybook\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
