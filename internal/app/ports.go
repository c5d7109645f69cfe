package app

import (
	"context"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/importer"
)

type ForecastUseCase interface {
	Forecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error)
}

type ImportResult struct {
	Warehouses       int
	OccupancyEntries int
	Shipments        int
	Warnings         []string
}

type ImportSnapshotUseCase interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}
