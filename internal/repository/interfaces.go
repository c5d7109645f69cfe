package repository

import (
	"context"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

type WarehouseRepo interface {
	Upsert(ctx context.Context, w *domain.Warehouse) error
	Get(ctx context.Context, name string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
	Delete(ctx context.Context, name string) error
}

type OccupancyRepo interface {
	Get(ctx context.Context, warehouse string) (*domain.OccupancyEntry, error)
	Set(ctx context.Context, e *domain.OccupancyEntry) error
	List(ctx context.Context) ([]*domain.OccupancyEntry, error)
	AppendLog(ctx context.Context, c *domain.OccupancyChange) error
	ListLog(ctx context.Context, warehouse string, limit int) ([]*domain.OccupancyChange, error)
}

// ShipmentFilter narrows a shipment listing. Zero values match everything.
type ShipmentFilter struct {
	Statuses    []domain.ShipmentStatus
	Warehouse   string
	PendingOnly bool
}

type ShipmentRepo interface {
	Create(ctx context.Context, s *domain.Shipment) error
	GetByID(ctx context.Context, id string) (*domain.Shipment, error)
	List(ctx context.Context, filter ShipmentFilter) ([]*domain.Shipment, error)
	Update(ctx context.Context, s *domain.Shipment) error
	Delete(ctx context.Context, id string) error
}
