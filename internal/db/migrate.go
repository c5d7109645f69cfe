package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateShipmentsDelayedStatus(db); err != nil {
		return fmt.Errorf("migrating shipments status constraint: %w", err)
	}
	return nil
}

const shipmentsTableSQL = `(
		id                    TEXT PRIMARY KEY,
		order_ref             TEXT NOT NULL,
		destination_warehouse TEXT NOT NULL DEFAULT '',
		arrival_week          INTEGER,
		bin_volume            REAL NOT NULL DEFAULT 0,
		status                TEXT NOT NULL DEFAULT 'planned'
		                      CHECK(status IN ('planned','in_transit','at_port','arrived','unloading',
		                                       'inspecting','receiving','stored','archived','cancelled','delayed')),
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`

// migrateShipmentsDelayedStatus rebuilds shipments tables created before the
// 'delayed' status existed. SQLite cannot alter a CHECK constraint in place.
func migrateShipmentsDelayedStatus(db *sql.DB) error {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring db connection: %w", err)
	}
	defer conn.Close()

	var createSQL string
	if err := conn.QueryRowContext(ctx, `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'shipments'`).Scan(&createSQL); err != nil {
		return fmt.Errorf("loading shipments schema: %w", err)
	}
	if strings.Contains(strings.ToLower(createSQL), "'delayed'") {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	steps := []struct {
		desc string
		stmt string
	}{
		{"dropping stale shipments_new", `DROP TABLE IF EXISTS shipments_new`},
		{"creating shipments_new", `CREATE TABLE shipments_new ` + shipmentsTableSQL},
		{"copying shipments data", `INSERT INTO shipments_new (
			id, order_ref, destination_warehouse, arrival_week, bin_volume, status, created_at, updated_at
		) SELECT
			id, order_ref, destination_warehouse, arrival_week, bin_volume, status, created_at, updated_at
		FROM shipments`},
		{"dropping old shipments", `DROP TABLE shipments`},
		{"renaming shipments_new", `ALTER TABLE shipments_new RENAME TO shipments`},
		{"recreating idx_shipments_status", `CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status)`},
		{"recreating idx_shipments_destination", `CREATE INDEX IF NOT EXISTS idx_shipments_destination ON shipments(destination_warehouse)`},
		{"recreating idx_shipments_arrival_week", `CREATE INDEX IF NOT EXISTS idx_shipments_arrival_week ON shipments(arrival_week)`},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.stmt); err != nil {
			return fmt.Errorf("%s: %w", step.desc, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing shipments migration: %w", err)
	}
	committed = true

	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS warehouses (
		name       TEXT PRIMARY KEY,
		total_bins INTEGER NOT NULL CHECK(total_bins >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS occupancy (
		warehouse  TEXT PRIMARY KEY REFERENCES warehouses(name) ON DELETE CASCADE,
		bins_used  REAL NOT NULL DEFAULT 0 CHECK(bins_used >= 0),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS occupancy_log (
		id            TEXT PRIMARY KEY,
		warehouse     TEXT NOT NULL REFERENCES warehouses(name) ON DELETE CASCADE,
		previous_bins REAL NOT NULL,
		new_bins      REAL NOT NULL,
		changed_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_occupancy_log_warehouse ON occupancy_log(warehouse, changed_at)`,

	// Destinations are free text: shipments may name warehouses that are not
	// registered yet, so there is no foreign key here.
	`CREATE TABLE IF NOT EXISTS shipments ` + shipmentsTableSQL,

	`CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_destination ON shipments(destination_warehouse)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_arrival_week ON shipments(arrival_week)`,

	// Operator note on occupancy changes
	`ALTER TABLE occupancy_log ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}
