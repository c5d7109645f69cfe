package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
)

type warehouseService struct {
	warehouses repository.WarehouseRepo
}

func NewWarehouseService(warehouses repository.WarehouseRepo) WarehouseService {
	return &warehouseService{warehouses: warehouses}
}

// Upsert registers a warehouse or changes its capacity. Names are stored
// trimmed and upper-cased.
func (s *warehouseService) Upsert(ctx context.Context, name string, totalBins int) (*domain.Warehouse, error) {
	key := domain.NormalizeWarehouseName(name)
	if key == "" {
		return nil, fmt.Errorf("warehouse name is required")
	}
	if totalBins < 0 {
		return nil, fmt.Errorf("total bins must be >= 0, got %d", totalBins)
	}

	now := time.Now().UTC()
	w := &domain.Warehouse{Name: key, TotalBins: totalBins, CreatedAt: now, UpdatedAt: now}
	if err := s.warehouses.Upsert(ctx, w); err != nil {
		return nil, err
	}
	return s.warehouses.Get(ctx, key)
}

func (s *warehouseService) Get(ctx context.Context, name string) (*domain.Warehouse, error) {
	return s.warehouses.Get(ctx, domain.NormalizeWarehouseName(name))
}

func (s *warehouseService) List(ctx context.Context) ([]*domain.Warehouse, error) {
	return s.warehouses.List(ctx)
}

func (s *warehouseService) Delete(ctx context.Context, name string) error {
	return s.warehouses.Delete(ctx, domain.NormalizeWarehouseName(name))
}

// Registry loads every warehouse into a forecast registry.
func (s *warehouseService) Registry(ctx context.Context) (domain.Registry, error) {
	list, err := s.warehouses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading warehouses: %w", err)
	}
	warehouses := make([]domain.Warehouse, len(list))
	for i, w := range list {
		warehouses[i] = *w
	}
	return domain.NewRegistry(warehouses...), nil
}
