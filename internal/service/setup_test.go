package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db         *sql.DB
	uow        db.UnitOfWork
	warehouses *repository.SQLiteWarehouseRepo
	occupancy  *repository.SQLiteOccupancyRepo
	shipments  *repository.SQLiteShipmentRepo

	warehouseSvc WarehouseService
	occupancySvc OccupancyService
	shipmentSvc  ShipmentService
	forecastSvc  ForecastService
	importSvc    ImportService
}

func newTestServices(t *testing.T, observers ...UseCaseObserver) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ts := &testServices{
		db:         database,
		uow:        uow,
		warehouses: repository.NewSQLiteWarehouseRepo(database),
		occupancy:  repository.NewSQLiteOccupancyRepo(database),
		shipments:  repository.NewSQLiteShipmentRepo(database),
	}
	ts.warehouseSvc = NewWarehouseService(ts.warehouses)
	ts.occupancySvc = NewOccupancyService(ts.occupancy, uow, observers...)
	ts.shipmentSvc = NewShipmentService(ts.shipments, uow)
	ts.forecastSvc = NewForecastService(ts.warehouses, ts.occupancy, ts.shipments, 0, observers...)
	ts.importSvc = NewImportService(uow, observers...)
	return ts
}

func (ts *testServices) addWarehouse(t *testing.T, name string, bins int) {
	t.Helper()
	_, err := ts.warehouseSvc.Upsert(context.Background(), name, bins)
	require.NoError(t, err)
}

func (ts *testServices) setOccupancy(t *testing.T, name string, bins float64) {
	t.Helper()
	_, err := ts.occupancySvc.Set(context.Background(), name, bins, "")
	require.NoError(t, err)
}

func weekPtr(w calendar.Week) *calendar.Week { return &w }

func intPtr(v int) *int { return &v }
