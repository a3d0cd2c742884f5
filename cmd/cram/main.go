package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/tbielak/cram/internal/cli"
	"github.com/tbielak/cram/internal/config"
	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/ingest"
	"github.com/tbielak/cram/internal/repository"
	"github.com/tbielak/cram/internal/service"
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

	database, err := db.OpenDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional operations.
	courseRepo := repository.NewSQLiteCourseRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var planObservers []service.Observer
	if os.Getenv("CRAM_DEBUG") != "" {
		planObservers = append(planObservers, service.NewSlogObserver(os.Stderr))
	}

	app := &cli.App{
		Courses:     service.NewCourseService(courseRepo, uow),
		Preferences: service.NewPreferenceService(prefRepo, uow),
		Plans:       service.NewPlanService(courseRepo, prefRepo, planRepo, uow, planObservers...),
		Estimates:   service.NewEstimateService(courseRepo, uow),
		Ingest:      service.NewIngestService(courseRepo, uow, ingest.DefaultSearchDirs()),
		State:       service.NewStateService(courseRepo, prefRepo, planRepo, uow),
		Export:      service.NewExportService(courseRepo, planRepo, cfg.Export.Dir),

		DefaultExportFormat: cfg.Export.Format,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
