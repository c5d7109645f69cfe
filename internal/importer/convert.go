package importer

import (
	"sort"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/google/uuid"
)

// Snapshot holds the domain objects produced from a SnapshotSchema.
type Snapshot struct {
	Warehouses []*domain.Warehouse
	Occupancy  []*domain.OccupancyEntry
	Shipments  []*domain.Shipment
}

// Convert transforms a validated SnapshotSchema into domain objects ready for
// persistence. Call ValidateSnapshotSchema first; Convert assumes the schema
// is valid.
func Convert(schema *SnapshotSchema, now time.Time) *Snapshot {
	now = now.UTC()
	snap := &Snapshot{}

	for _, w := range schema.Warehouses {
		bins, _ := w.TotalBins.Int()
		snap.Warehouses = append(snap.Warehouses, &domain.Warehouse{
			Name:      domain.NormalizeWarehouseName(w.Name),
			TotalBins: bins,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, name := range sortedKeys(schema.Occupancy) {
		snap.Occupancy = append(snap.Occupancy, &domain.OccupancyEntry{
			Warehouse: domain.NormalizeWarehouseName(name),
			BinsUsed:  schema.Occupancy[name].Float(),
			UpdatedAt: now,
		})
	}

	for _, s := range schema.Shipments {
		status := domain.ShipmentPlanned
		if s.Status != "" {
			status, _ = domain.ParseShipmentStatus(s.Status)
		}
		snap.Shipments = append(snap.Shipments, &domain.Shipment{
			ID:                   uuid.New().String(),
			OrderRef:             s.OrderRef,
			DestinationWarehouse: domain.NormalizeWarehouseName(s.DestinationWarehouse),
			ArrivalWeek:          coerceWeek(s.ArrivalWeek),
			BinVolume:            s.BinVolume.Float(),
			Status:               status,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	return snap
}

// coerceWeek keeps any whole number; the forecast drops weeks outside 1-53.
func coerceWeek(n FlexNumber) *int {
	w, ok := n.Int()
	if !ok {
		return nil
	}
	return &w
}

func sortedKeys(m map[string]FlexNumber) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
