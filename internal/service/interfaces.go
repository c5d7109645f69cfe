package service

import (
	"context"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/importer"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
)

type WarehouseService interface {
	Upsert(ctx context.Context, name string, totalBins int) (*domain.Warehouse, error)
	Get(ctx context.Context, name string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
	Delete(ctx context.Context, name string) error
	Registry(ctx context.Context) (domain.Registry, error)
}

type OccupancyService interface {
	Set(ctx context.Context, warehouse string, binsUsed float64, note string) (*domain.OccupancyChange, error)
	List(ctx context.Context) ([]*domain.OccupancyEntry, error)
	Snapshot(ctx context.Context) (map[string]float64, error)
	History(ctx context.Context, warehouse string, limit int) ([]*domain.OccupancyChange, error)
}

type ShipmentService interface {
	Create(ctx context.Context, s *domain.Shipment) error
	GetByID(ctx context.Context, id string) (*domain.Shipment, error)
	List(ctx context.Context, filter repository.ShipmentFilter) ([]*domain.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.ShipmentStatus) (*domain.Shipment, error)
	Delete(ctx context.Context, id string) error
}

type ForecastService interface {
	Forecast(ctx context.Context, req contract.ForecastRequest) (*contract.ForecastResponse, error)
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*contract.ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*contract.ImportResult, error)
}
