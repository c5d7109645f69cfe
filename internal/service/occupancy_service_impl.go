package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/google/uuid"
)

type occupancyService struct {
	occupancy repository.OccupancyRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewOccupancyService(occupancy repository.OccupancyRepo, uow db.UnitOfWork, observers ...UseCaseObserver) OccupancyService {
	return &occupancyService{
		occupancy: occupancy,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Set records the bins in use at a warehouse and appends an audit entry in
// the same transaction.
func (s *occupancyService) Set(ctx context.Context, warehouse string, binsUsed float64, note string) (change *domain.OccupancyChange, err error) {
	startedAt := time.Now().UTC()
	name := domain.NormalizeWarehouseName(warehouse)
	fields := map[string]any{"warehouse": name, "bins_used": binsUsed}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-occupancy",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if math.IsNaN(binsUsed) || math.IsInf(binsUsed, 0) || binsUsed < 0 {
		return nil, fmt.Errorf("bins used must be a number >= 0, got %v", binsUsed)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var applyErr error
		change, applyErr = applyOccupancy(ctx, tx, name, binsUsed, note, startedAt)
		return applyErr
	})
	if err != nil {
		return nil, err
	}
	fields["previous_bins"] = change.PreviousBins
	return change, nil
}

// applyOccupancy writes the new value and its audit row using tx-scoped
// repositories. The warehouse must be registered.
func applyOccupancy(ctx context.Context, tx db.DBTX, warehouse string, binsUsed float64, note string, now time.Time) (*domain.OccupancyChange, error) {
	if _, err := repository.NewSQLiteWarehouseRepo(tx).Get(ctx, warehouse); err != nil {
		return nil, err
	}
	occ := repository.NewSQLiteOccupancyRepo(tx)

	previous := 0.0
	current, err := occ.Get(ctx, warehouse)
	switch {
	case err == nil:
		previous = current.BinsUsed
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if err := occ.Set(ctx, &domain.OccupancyEntry{Warehouse: warehouse, BinsUsed: binsUsed, UpdatedAt: now}); err != nil {
		return nil, err
	}
	change := &domain.OccupancyChange{
		ID:           uuid.New().String(),
		Warehouse:    warehouse,
		PreviousBins: previous,
		NewBins:      binsUsed,
		Note:         note,
		ChangedAt:    now,
	}
	if err := occ.AppendLog(ctx, change); err != nil {
		return nil, err
	}
	return change, nil
}

func (s *occupancyService) List(ctx context.Context) ([]*domain.OccupancyEntry, error) {
	return s.occupancy.List(ctx)
}

// Snapshot returns bins in use keyed by warehouse name.
func (s *occupancyService) Snapshot(ctx context.Context) (map[string]float64, error) {
	entries, err := s.occupancy.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading occupancy: %w", err)
	}
	snap := make(map[string]float64, len(entries))
	for _, e := range entries {
		snap[e.Warehouse] = e.BinsUsed
	}
	return snap, nil
}

func (s *occupancyService) History(ctx context.Context, warehouse string, limit int) ([]*domain.OccupancyChange, error) {
	return s.occupancy.ListLog(ctx, domain.NormalizeWarehouseName(warehouse), limit)
}
