package importer

import (
	"testing"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var convertNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func TestConvert_MinimalSnapshot(t *testing.T) {
	snap := Convert(validMinimalSchema(), convertNow)

	require.Len(t, snap.Warehouses, 1)
	assert.Equal(t, "PRETORIA", snap.Warehouses[0].Name)
	assert.Equal(t, 100, snap.Warehouses[0].TotalBins)
	assert.Equal(t, convertNow, snap.Warehouses[0].CreatedAt)

	require.Len(t, snap.Occupancy, 1)
	assert.Equal(t, "PRETORIA", snap.Occupancy[0].Warehouse)
	assert.Equal(t, 70.0, snap.Occupancy[0].BinsUsed)

	require.Len(t, snap.Shipments, 1)
	s := snap.Shipments[0]
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "PO-1", s.OrderRef)
	require.NotNil(t, s.ArrivalWeek)
	assert.Equal(t, 42, *s.ArrivalWeek)
	assert.Equal(t, 15.0, s.BinVolume)
	assert.Equal(t, domain.ShipmentPlanned, s.Status, "missing status defaults to planned")
}

func TestConvert_NormalizesNames(t *testing.T) {
	schema := &SnapshotSchema{
		Warehouses: []WarehouseImport{{Name: " klapmuts ", TotalBins: Num(200)}},
		Occupancy:  map[string]FlexNumber{"klapmuts": Num(5)},
		Shipments:  []ShipmentImport{{OrderRef: "PO-1", DestinationWarehouse: "Klapmuts", Status: "At Port"}},
	}
	snap := Convert(schema, convertNow)

	assert.Equal(t, "KLAPMUTS", snap.Warehouses[0].Name)
	assert.Equal(t, "KLAPMUTS", snap.Occupancy[0].Warehouse)
	assert.Equal(t, "KLAPMUTS", snap.Shipments[0].DestinationWarehouse)
	assert.Equal(t, domain.ShipmentAtPort, snap.Shipments[0].Status)
}

func TestConvert_CoercesDirtyShipmentFields(t *testing.T) {
	schema := &SnapshotSchema{
		Shipments: []ShipmentImport{
			{OrderRef: "PO-1", ArrivalWeek: FlexNumber{}, BinVolume: FlexNumber{}},
			{OrderRef: "PO-2", ArrivalWeek: Num(41.5), BinVolume: Num(-3)},
			{OrderRef: "PO-3", ArrivalWeek: Num(60), BinVolume: Num(2.25)},
		},
	}
	snap := Convert(schema, convertNow)
	require.Len(t, snap.Shipments, 3)

	assert.Nil(t, snap.Shipments[0].ArrivalWeek)
	assert.Equal(t, 0.0, snap.Shipments[0].BinVolume)

	assert.Nil(t, snap.Shipments[1].ArrivalWeek, "fractional week is unscheduled")
	assert.Equal(t, -3.0, snap.Shipments[1].BinVolume, "negative volume is kept; the forecast clamps it")

	require.NotNil(t, snap.Shipments[2].ArrivalWeek)
	assert.Equal(t, 60, *snap.Shipments[2].ArrivalWeek)
	assert.False(t, snap.Shipments[2].Scheduled())
}

func TestConvert_UniqueShipmentIDs(t *testing.T) {
	schema := &SnapshotSchema{
		Shipments: []ShipmentImport{{OrderRef: "A"}, {OrderRef: "B"}, {OrderRef: "C"}},
	}
	snap := Convert(schema, convertNow)

	seen := map[string]bool{}
	for _, s := range snap.Shipments {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestConvert_OccupancyOrderIsStable(t *testing.T) {
	schema := &SnapshotSchema{
		Occupancy: map[string]FlexNumber{"PRETORIA": Num(1), "DURBAN": Num(2), "KLAPMUTS": Num(3)},
	}
	snap := Convert(schema, convertNow)
	require.Len(t, snap.Occupancy, 3)
	assert.Equal(t, "DURBAN", snap.Occupancy[0].Warehouse)
	assert.Equal(t, "KLAPMUTS", snap.Occupancy[1].Warehouse)
	assert.Equal(t, "PRETORIA", snap.Occupancy[2].Warehouse)
}
