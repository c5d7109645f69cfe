package main

import (
	"fmt"
	"os"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/config"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	formatter.SetColorEnabled(cfg.UseColor(os.Stdout.Fd()))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	warehouseRepo := repository.NewSQLiteWarehouseRepo(database)
	occupancyRepo := repository.NewSQLiteOccupancyRepo(database)
	shipmentRepo := repository.NewSQLiteShipmentRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Warehouses: service.NewWarehouseService(warehouseRepo),
		Occupancy:  service.NewOccupancyService(occupancyRepo, uow, observers...),
		Shipments:  service.NewShipmentService(shipmentRepo, uow),
		Forecast:   service.NewForecastService(warehouseRepo, occupancyRepo, shipmentRepo, cfg.HorizonWeeks, observers...),
		Import:     service.NewImportService(uow, observers...),
	}

	// Forms and the week browser need a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
