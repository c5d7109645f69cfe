package repository

import (
	"context"
	"testing"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyRepo_SetAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteWarehouseRepo(db).Upsert(ctx, testutil.NewTestWarehouse("PRETORIA")))
	repo := NewSQLiteOccupancyRepo(db)

	now := time.Now().UTC()
	require.NoError(t, repo.Set(ctx, &domain.OccupancyEntry{Warehouse: "PRETORIA", BinsUsed: 70, UpdatedAt: now}))
	require.NoError(t, repo.Set(ctx, &domain.OccupancyEntry{Warehouse: "PRETORIA", BinsUsed: 72.5, UpdatedAt: now}))

	got, err := repo.Get(ctx, "PRETORIA")
	require.NoError(t, err)
	assert.Equal(t, 72.5, got.BinsUsed)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOccupancyRepo_RequiresRegisteredWarehouse(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOccupancyRepo(db)

	err := repo.Set(context.Background(), &domain.OccupancyEntry{Warehouse: "GHOST", BinsUsed: 1, UpdatedAt: time.Now()})
	assert.Error(t, err, "foreign key should reject unknown warehouse")
}

func TestOccupancyRepo_RejectsNegativeBins(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteWarehouseRepo(db).Upsert(ctx, testutil.NewTestWarehouse("PRETORIA")))

	err := NewSQLiteOccupancyRepo(db).Set(ctx, &domain.OccupancyEntry{Warehouse: "PRETORIA", BinsUsed: -1, UpdatedAt: time.Now()})
	assert.Error(t, err)
}

func TestOccupancyRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteOccupancyRepo(db).Get(context.Background(), "PRETORIA")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOccupancyRepo_ListLogNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteWarehouseRepo(db).Upsert(ctx, testutil.NewTestWarehouse("PRETORIA")))
	require.NoError(t, NewSQLiteWarehouseRepo(db).Upsert(ctx, testutil.NewTestWarehouse("DURBAN")))
	repo := NewSQLiteOccupancyRepo(db)

	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	for i, bins := range []float64{10, 20, 30} {
		require.NoError(t, repo.AppendLog(ctx, &domain.OccupancyChange{
			ID:           uuid.New().String(),
			Warehouse:    "PRETORIA",
			PreviousBins: bins - 10,
			NewBins:      bins,
			Note:         "cycle count",
			ChangedAt:    base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.AppendLog(ctx, &domain.OccupancyChange{
		ID: uuid.New().String(), Warehouse: "DURBAN", NewBins: 5, ChangedAt: base,
	}))

	all, err := repo.ListLog(ctx, "PRETORIA", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 30.0, all[0].NewBins)
	assert.Equal(t, 10.0, all[2].NewBins)
	assert.Equal(t, "cycle count", all[0].Note)

	limited, err := repo.ListLog(ctx, "PRETORIA", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
