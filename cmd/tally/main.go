package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	var observers []service.UseCaseObserver
	if cfg.Log.Enabled {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, "run_id", uuid.NewString()))
	}

	app := &cli.App{
		Records:     service.NewRecordService(store, observers...),
		UIMode:      cfg.UI.Mode,
		HistoryPath: cli.DefaultHistoryPath(),
	}

	// Detect interactive terminal for ui.mode=auto.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openStore builds the configured RecordStore and a func releasing it.
func openStore(cfg config.StoreConfig) (repository.RecordStore, func(), error) {
	switch cfg.Driver {
	case config.DriverYAML:
		return repository.NewYAMLRecordStore(cfg.Path), func() {}, nil
	default:
		database, err := db.OpenDB(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteRecordStore(db.NewSQLiteUnitOfWork(database)), func() { closeQuietly(database) }, nil
	}
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
