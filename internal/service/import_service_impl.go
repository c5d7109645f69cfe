package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/importer"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*contract.ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*contract.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.SnapshotSchema) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		event := UseCaseEvent{
			Name:      "import-snapshot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		}
		if err == nil && result != nil {
			event.Warnings = result.Warnings
		}
		s.observer.ObserveUseCase(ctx, event)
	}()

	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	snap := importer.Convert(schema, startedAt)
	result = &contract.ImportResult{}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		warehouses := repository.NewSQLiteWarehouseRepo(tx)
		shipments := repository.NewSQLiteShipmentRepo(tx)

		for _, w := range snap.Warehouses {
			if err := warehouses.Upsert(ctx, w); err != nil {
				return fmt.Errorf("upserting warehouse %s: %w", w.Name, err)
			}
			result.Warehouses++
		}

		list, err := warehouses.List(ctx)
		if err != nil {
			return fmt.Errorf("loading warehouses: %w", err)
		}
		registered := make(map[string]bool, len(list))
		for _, w := range list {
			registered[w.Name] = true
		}

		for _, e := range snap.Occupancy {
			if !registered[e.Warehouse] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("occupancy for unknown warehouse %s skipped", e.Warehouse))
				continue
			}
			if _, err := applyOccupancy(ctx, tx, e.Warehouse, e.BinsUsed, "import", startedAt); err != nil {
				return fmt.Errorf("setting occupancy for %s: %w", e.Warehouse, err)
			}
			result.OccupancyEntries++
		}

		unregistered := 0
		for _, sh := range snap.Shipments {
			if err := shipments.Create(ctx, sh); err != nil {
				return fmt.Errorf("creating shipment %q: %w", sh.OrderRef, err)
			}
			if !registered[sh.DestinationWarehouse] {
				unregistered++
			}
			result.Shipments++
		}
		if unregistered > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d shipment(s) reference unregistered warehouses and will not be forecast", unregistered))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["warehouses"] = result.Warehouses
	fields["occupancy_entries"] = result.OccupancyEntries
	fields["shipments"] = result.Shipments
	fields["warnings"] = len(result.Warnings)
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
