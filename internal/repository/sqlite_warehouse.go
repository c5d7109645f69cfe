package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// SQLiteWarehouseRepo implements WarehouseRepo using a SQLite database.
type SQLiteWarehouseRepo struct {
	db db.DBTX
}

// NewSQLiteWarehouseRepo creates a new SQLiteWarehouseRepo.
func NewSQLiteWarehouseRepo(conn db.DBTX) *SQLiteWarehouseRepo {
	return &SQLiteWarehouseRepo{db: conn}
}

// Upsert inserts the warehouse or updates its capacity, keeping created_at.
func (r *SQLiteWarehouseRepo) Upsert(ctx context.Context, w *domain.Warehouse) error {
	query := `INSERT INTO warehouses (name, total_bins, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			total_bins = excluded.total_bins,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		w.Name,
		w.TotalBins,
		formatTime(w.CreatedAt),
		formatTime(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting warehouse: %w", err)
	}
	return nil
}

func (r *SQLiteWarehouseRepo) Get(ctx context.Context, name string) (*domain.Warehouse, error) {
	query := `SELECT name, total_bins, created_at, updated_at FROM warehouses WHERE name = ?`
	w, err := scanWarehouse(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("warehouse %s: %w", name, ErrNotFound)
	}
	return w, err
}

func (r *SQLiteWarehouseRepo) List(ctx context.Context) ([]*domain.Warehouse, error) {
	query := `SELECT name, total_bins, created_at, updated_at FROM warehouses ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []*domain.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating warehouses: %w", err)
	}
	return warehouses, nil
}

// Delete removes the warehouse; its occupancy and audit rows cascade.
func (r *SQLiteWarehouseRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM warehouses WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting warehouse: %w", err)
	}
	return requireAffected(res, "warehouse "+name)
}

func scanWarehouse(row rowScanner) (*domain.Warehouse, error) {
	var w domain.Warehouse
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&w.Name, &w.TotalBins, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning warehouse: %w", err)
	}

	var err error
	if w.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}
