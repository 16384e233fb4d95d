package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gestemps/internal/chart"
	"github.com/alexanderramin/gestemps/internal/cli"
	"github.com/alexanderramin/gestemps/internal/config"
	"github.com/alexanderramin/gestemps/internal/db"
	"github.com/alexanderramin/gestemps/internal/repository"
	"github.com/alexanderramin/gestemps/internal/service"
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

	logger := cfg.NewLogger(os.Stderr)
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	app := &cli.App{
		Compute:   service.NewComputeService(logger, observer),
		ChartPath: cfg.ChartPath,
		Chart:     chart.SVGRenderer{Width: cfg.ChartWidth, Height: cfg.ChartHeight},
	}

	if cfg.HistoryEnabled {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		app.History = service.NewHistoryService(
			repository.NewSQLiteRunRepo(database),
			db.NewSQLiteUnitOfWork(database),
			observer,
		)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
