package importer

import (
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// ValidateSnapshotSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found. Shipment week and volume
// fields are never errors; Convert coerces them.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	errs = append(errs, validateWarehouses(schema.Warehouses)...)
	errs = append(errs, validateOccupancy(schema.Occupancy)...)
	errs = append(errs, validateShipments(schema.Shipments)...)

	return errs
}

func validateWarehouses(warehouses []WarehouseImport) []error {
	var errs []error
	seen := make(map[string]int)

	for i, w := range warehouses {
		prefix := fmt.Sprintf("warehouses[%d]", i)
		name := domain.NormalizeWarehouseName(w.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if first, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("%s.name: duplicate warehouse %q (first at warehouses[%d])", prefix, name, first))
		} else {
			seen[name] = i
		}

		bins, ok := w.TotalBins.Int()
		switch {
		case !w.TotalBins.Valid:
			errs = append(errs, fmt.Errorf("%s.total_bins is required", prefix))
		case !ok:
			errs = append(errs, fmt.Errorf("%s.total_bins: must be a whole number, got %v", prefix, w.TotalBins.Value))
		case bins < 0:
			errs = append(errs, fmt.Errorf("%s.total_bins: must be >= 0, got %d", prefix, bins))
		}
	}

	return errs
}

func validateOccupancy(occupancy map[string]FlexNumber) []error {
	var errs []error
	for _, name := range sortedKeys(occupancy) {
		v := occupancy[name]
		if domain.NormalizeWarehouseName(name) == "" {
			errs = append(errs, fmt.Errorf("occupancy: empty warehouse name"))
			continue
		}
		if !v.Valid {
			errs = append(errs, fmt.Errorf("occupancy[%s]: not a number", name))
		} else if v.Value < 0 {
			errs = append(errs, fmt.Errorf("occupancy[%s]: must be >= 0, got %v", name, v.Value))
		}
	}
	return errs
}

func validateShipments(shipments []ShipmentImport) []error {
	var errs []error
	for i, s := range shipments {
		prefix := fmt.Sprintf("shipments[%d]", i)
		if s.OrderRef == "" {
			errs = append(errs, fmt.Errorf("%s.order_ref is required", prefix))
		}
		if s.Status != "" {
			if _, ok := domain.ParseShipmentStatus(s.Status); !ok {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, s.Status))
			}
		}
	}
	return errs
}
