package forecast

import (
	"testing"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
)

func weekPtr(n int) *int { return &n }

func testRegistry() domain.Registry {
	return domain.NewRegistry(
		domain.Warehouse{Name: "PRETORIA", TotalBins: 100},
		domain.Warehouse{Name: "KLAPMUTS", TotalBins: 200},
	)
}

func TestClassifyShipments_BucketsPendingByWarehouseAndWeek(t *testing.T) {
	shipments := []domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(42), BinVolume: 10, Status: domain.ShipmentPlanned},
		{OrderRef: "B", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(42), BinVolume: 5, Status: domain.ShipmentInTransit},
		{OrderRef: "C", DestinationWarehouse: "KLAPMUTS", ArrivalWeek: weekPtr(43), BinVolume: 7, Status: domain.ShipmentDelayed},
	}

	pending := ClassifyShipments(shipments, testRegistry())

	assert.Equal(t, []float64{10, 5}, pending.Volumes("PRETORIA", 42))
	assert.Equal(t, []float64{7}, pending.Volumes("KLAPMUTS", 43))
	assert.Empty(t, pending.Volumes("KLAPMUTS", 42))
	assert.Equal(t, 3, pending.Len())
}

func TestClassifyShipments_ExcludesResolvedStates(t *testing.T) {
	for _, status := range []domain.ShipmentStatus{domain.ShipmentStored, domain.ShipmentArchived, domain.ShipmentCancelled} {
		t.Run(string(status), func(t *testing.T) {
			shipments := []domain.Shipment{
				{OrderRef: "X", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(42), BinVolume: 50, Status: status},
			}
			pending, excluded := ClassifyShipmentsDetailed(shipments, testRegistry())
			assert.Equal(t, 0, pending.Len())
			assert.Equal(t, 1, excluded.Resolved)
			assert.Equal(t, 0.0, Inflow(pending, "PRETORIA", 42))
		})
	}
}

func TestClassifyShipments_DropsUnknownWarehouse(t *testing.T) {
	shipments := []domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: "DURBAN", ArrivalWeek: weekPtr(42), BinVolume: 10, Status: domain.ShipmentPlanned},
		{OrderRef: "B", DestinationWarehouse: "", ArrivalWeek: weekPtr(42), BinVolume: 10, Status: domain.ShipmentPlanned},
	}
	pending, excluded := ClassifyShipmentsDetailed(shipments, testRegistry())
	assert.Equal(t, 0, pending.Len())
	assert.Equal(t, Exclusions{Unassigned: 2}, excluded)
}

func TestClassifyShipments_NormalizesDestination(t *testing.T) {
	shipments := []domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: " pretoria", ArrivalWeek: weekPtr(42), BinVolume: 3, Status: domain.ShipmentPlanned},
	}
	pending := ClassifyShipments(shipments, testRegistry())
	assert.Equal(t, []float64{3}, pending.Volumes("PRETORIA", 42))
}

func TestClassifyShipments_DropsUnscheduled(t *testing.T) {
	shipments := []domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: "PRETORIA", BinVolume: 10, Status: domain.ShipmentPlanned},
		{OrderRef: "B", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(0), BinVolume: 10, Status: domain.ShipmentPlanned},
		{OrderRef: "C", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(60), BinVolume: 10, Status: domain.ShipmentPlanned},
	}
	pending, excluded := ClassifyShipmentsDetailed(shipments, testRegistry())
	assert.Equal(t, 0, pending.Len())
	assert.Equal(t, 3, excluded.Unscheduled)
	assert.Equal(t, 3, excluded.Total())
}

func TestClassifyShipments_EmptyAndNilInputs(t *testing.T) {
	pending := ClassifyShipments(nil, testRegistry())
	assert.Equal(t, 0, pending.Len())

	pending = ClassifyShipments([]domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: "PRETORIA", ArrivalWeek: weekPtr(1), Status: domain.ShipmentPlanned},
	}, nil)
	assert.Equal(t, 0, pending.Len())
}

func TestClassifyShipments_DoesNotMutateInput(t *testing.T) {
	shipments := []domain.Shipment{
		{OrderRef: "A", DestinationWarehouse: "pretoria", ArrivalWeek: weekPtr(42), BinVolume: -4, Status: domain.ShipmentPlanned},
	}
	before := shipments[0]
	_ = ClassifyShipments(shipments, testRegistry())
	assert.Equal(t, before, shipments[0])
}
