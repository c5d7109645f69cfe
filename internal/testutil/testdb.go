package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// NewTestDB opens a migrated in-memory database that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedWarehouses inserts the given warehouses with plain SQL and returns
// the registry the forecast engine would build from them. It bypasses the
// repository so repository tests can use it too.
func SeedWarehouses(t *testing.T, database *sql.DB, warehouses ...*domain.Warehouse) domain.Registry {
	t.Helper()
	list := make([]domain.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		_, err := database.ExecContext(context.Background(),
			`INSERT INTO warehouses (name, total_bins, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			w.Name, w.TotalBins, w.CreatedAt.UTC().Format(time.RFC3339), w.UpdatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			t.Fatalf("seeding warehouse %s: %v", w.Name, err)
		}
		list = append(list, *w)
	}
	return domain.NewRegistry(list...)
}
