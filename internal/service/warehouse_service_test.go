package service

import (
	"context"
	"testing"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseService_UpsertNormalizesName(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	w, err := ts.warehouseSvc.Upsert(ctx, "  pretoria ", 500)
	require.NoError(t, err)
	assert.Equal(t, "PRETORIA", w.Name)
	assert.Equal(t, 500, w.TotalBins)

	got, err := ts.warehouseSvc.Get(ctx, "Pretoria")
	require.NoError(t, err)
	assert.Equal(t, 500, got.TotalBins)
}

func TestWarehouseService_UpsertUpdatesCapacity(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	first, err := ts.warehouseSvc.Upsert(ctx, "KLAPMUTS", 200)
	require.NoError(t, err)
	second, err := ts.warehouseSvc.Upsert(ctx, "klapmuts", 350)
	require.NoError(t, err)

	assert.Equal(t, 350, second.TotalBins)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at is kept on update")

	list, err := ts.warehouseSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWarehouseService_UpsertValidation(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.warehouseSvc.Upsert(ctx, "   ", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = ts.warehouseSvc.Upsert(ctx, "DURBAN", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ">= 0")

	w, err := ts.warehouseSvc.Upsert(ctx, "DURBAN", 0)
	require.NoError(t, err, "zero capacity is allowed")
	assert.Equal(t, 0, w.TotalBins)
}

func TestWarehouseService_DeleteAndNotFound(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.addWarehouse(t, "ATLANTIS", 50)

	require.NoError(t, ts.warehouseSvc.Delete(ctx, "atlantis"))

	_, err := ts.warehouseSvc.Get(ctx, "ATLANTIS")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, ts.warehouseSvc.Delete(ctx, "ATLANTIS"), repository.ErrNotFound)
}

func TestWarehouseService_Registry(t *testing.T) {
	ts := newTestServices(t)
	ts.addWarehouse(t, "PRETORIA", 100)
	ts.addWarehouse(t, "KLAPMUTS", 200)

	registry, err := ts.warehouseSvc.Registry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"KLAPMUTS", "PRETORIA"}, registry.Names())
	assert.Equal(t, 200, registry["KLAPMUTS"].TotalBins)
}
