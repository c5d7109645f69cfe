package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// SQLiteShipmentRepo implements ShipmentRepo using a SQLite database.
type SQLiteShipmentRepo struct {
	db db.DBTX
}

// NewSQLiteShipmentRepo creates a new SQLiteShipmentRepo.
func NewSQLiteShipmentRepo(conn db.DBTX) *SQLiteShipmentRepo {
	return &SQLiteShipmentRepo{db: conn}
}

const shipmentColumns = `id, order_ref, destination_warehouse, arrival_week, bin_volume, status, created_at, updated_at`

func (r *SQLiteShipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	query := `INSERT INTO shipments (` + shipmentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.OrderRef,
		s.DestinationWarehouse,
		nullableIntToValue(s.ArrivalWeek),
		s.BinVolume,
		string(s.Status),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting shipment: %w", err)
	}
	return nil
}

func (r *SQLiteShipmentRepo) GetByID(ctx context.Context, id string) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = ?`
	s, err := scanShipment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shipment: %w", ErrNotFound)
	}
	return s, err
}

// List returns shipments ordered by arrival week (unscheduled last), then
// order reference.
func (r *SQLiteShipmentRepo) List(ctx context.Context, filter ShipmentFilter) ([]*domain.Shipment, error) {
	var where []string
	var args []any

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			placeholders[i] = "?"
			args = append(args, string(st))
		}
		where = append(where, "status IN ("+strings.Join(placeholders, ",")+")")
	}
	if filter.Warehouse != "" {
		where = append(where, "UPPER(TRIM(destination_warehouse)) = ?")
		args = append(args, domain.NormalizeWarehouseName(filter.Warehouse))
	}
	if filter.PendingOnly {
		where = append(where, "status NOT IN (?, ?, ?)")
		args = append(args, string(domain.ShipmentStored), string(domain.ShipmentArchived), string(domain.ShipmentCancelled))
	}

	query := `SELECT ` + shipmentColumns + ` FROM shipments`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY arrival_week IS NULL, arrival_week, order_ref, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shipments: %w", err)
	}
	return shipments, nil
}

func (r *SQLiteShipmentRepo) Update(ctx context.Context, s *domain.Shipment) error {
	query := `UPDATE shipments SET order_ref = ?, destination_warehouse = ?, arrival_week = ?,
		bin_volume = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.OrderRef,
		s.DestinationWarehouse,
		nullableIntToValue(s.ArrivalWeek),
		s.BinVolume,
		string(s.Status),
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shipment: %w", err)
	}
	return requireAffected(res, "shipment")
}

func (r *SQLiteShipmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shipments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shipment: %w", err)
	}
	return requireAffected(res, "shipment")
}

func scanShipment(row rowScanner) (*domain.Shipment, error) {
	var s domain.Shipment
	var arrivalWeek sql.NullInt64
	var statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.OrderRef, &s.DestinationWarehouse,
		&arrivalWeek, &s.BinVolume, &statusStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning shipment: %w", err)
	}

	s.ArrivalWeek = parseNullableInt(arrivalWeek)
	s.Status = domain.ShipmentStatus(statusStr)
	if s.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
