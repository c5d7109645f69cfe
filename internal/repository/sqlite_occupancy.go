package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// SQLiteOccupancyRepo implements OccupancyRepo using a SQLite database.
type SQLiteOccupancyRepo struct {
	db db.DBTX
}

// NewSQLiteOccupancyRepo creates a new SQLiteOccupancyRepo.
func NewSQLiteOccupancyRepo(conn db.DBTX) *SQLiteOccupancyRepo {
	return &SQLiteOccupancyRepo{db: conn}
}

func (r *SQLiteOccupancyRepo) Get(ctx context.Context, warehouse string) (*domain.OccupancyEntry, error) {
	query := `SELECT warehouse, bins_used, updated_at FROM occupancy WHERE warehouse = ?`
	e, err := scanOccupancy(r.db.QueryRowContext(ctx, query, warehouse))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("occupancy for %s: %w", warehouse, ErrNotFound)
	}
	return e, err
}

func (r *SQLiteOccupancyRepo) Set(ctx context.Context, e *domain.OccupancyEntry) error {
	query := `INSERT INTO occupancy (warehouse, bins_used, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(warehouse) DO UPDATE SET
			bins_used = excluded.bins_used,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, e.Warehouse, e.BinsUsed, formatTime(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("setting occupancy: %w", err)
	}
	return nil
}

func (r *SQLiteOccupancyRepo) List(ctx context.Context) ([]*domain.OccupancyEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT warehouse, bins_used, updated_at FROM occupancy ORDER BY warehouse`)
	if err != nil {
		return nil, fmt.Errorf("listing occupancy: %w", err)
	}
	defer rows.Close()

	var entries []*domain.OccupancyEntry
	for rows.Next() {
		e, err := scanOccupancy(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating occupancy: %w", err)
	}
	return entries, nil
}

func (r *SQLiteOccupancyRepo) AppendLog(ctx context.Context, c *domain.OccupancyChange) error {
	query := `INSERT INTO occupancy_log (id, warehouse, previous_bins, new_bins, note, changed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Warehouse,
		c.PreviousBins,
		c.NewBins,
		c.Note,
		formatTime(c.ChangedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting occupancy change: %w", err)
	}
	return nil
}

// ListLog returns the most recent changes for a warehouse, newest first.
// A limit of 0 or less returns every change.
func (r *SQLiteOccupancyRepo) ListLog(ctx context.Context, warehouse string, limit int) ([]*domain.OccupancyChange, error) {
	query := `SELECT id, warehouse, previous_bins, new_bins, note, changed_at
		FROM occupancy_log WHERE warehouse = ?
		ORDER BY changed_at DESC, rowid DESC`
	args := []any{warehouse}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing occupancy changes: %w", err)
	}
	defer rows.Close()

	var changes []*domain.OccupancyChange
	for rows.Next() {
		var c domain.OccupancyChange
		var changedAtStr string
		if err := rows.Scan(&c.ID, &c.Warehouse, &c.PreviousBins, &c.NewBins, &c.Note, &changedAtStr); err != nil {
			return nil, fmt.Errorf("scanning occupancy change: %w", err)
		}
		if c.ChangedAt, err = parseTime("changed_at", changedAtStr); err != nil {
			return nil, err
		}
		changes = append(changes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating occupancy changes: %w", err)
	}
	return changes, nil
}

func scanOccupancy(row rowScanner) (*domain.OccupancyEntry, error) {
	var e domain.OccupancyEntry
	var updatedAtStr string
	if err := row.Scan(&e.Warehouse, &e.BinsUsed, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning occupancy: %w", err)
	}
	var err error
	if e.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}
