package forecast

import "github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"

type inflowKey struct {
	Warehouse string
	Week      int
}

// PendingInflow holds the bin volumes of pending shipments grouped by
// destination warehouse and arrival week number. The zero value is empty
// and ready to read.
type PendingInflow struct {
	volumes map[inflowKey][]float64
}

func (p *PendingInflow) add(warehouse string, week int, volume float64) {
	if p.volumes == nil {
		p.volumes = make(map[inflowKey][]float64)
	}
	k := inflowKey{Warehouse: warehouse, Week: week}
	p.volumes[k] = append(p.volumes[k], volume)
}

// Volumes returns the raw volumes recorded for a (warehouse, week) pair.
func (p PendingInflow) Volumes(warehouse string, week int) []float64 {
	return p.volumes[inflowKey{Warehouse: warehouse, Week: week}]
}

// Len returns the number of shipments held.
func (p PendingInflow) Len() int {
	n := 0
	for _, v := range p.volumes {
		n += len(v)
	}
	return n
}

// Exclusions counts shipments left out of the per-warehouse inflow, by reason.
type Exclusions struct {
	Resolved    int // stored, archived or cancelled
	Unassigned  int // destination not in the registry
	Unscheduled int // arrival week missing or outside 1-53
}

// Total returns the number of excluded shipments.
func (e Exclusions) Total() int {
	return e.Resolved + e.Unassigned + e.Unscheduled
}

// ClassifyShipments buckets pending shipments by (warehouse, week). Resolved
// shipments, shipments for warehouses outside the registry and shipments
// without a usable arrival week are dropped; dirty records never fail the
// classification.
func ClassifyShipments(shipments []domain.Shipment, registry domain.Registry) PendingInflow {
	pending, _ := ClassifyShipmentsDetailed(shipments, registry)
	return pending
}

// ClassifyShipmentsDetailed is ClassifyShipments plus a count of what was
// dropped and why.
func ClassifyShipmentsDetailed(shipments []domain.Shipment, registry domain.Registry) (PendingInflow, Exclusions) {
	var pending PendingInflow
	var excluded Exclusions

	for i := range shipments {
		s := &shipments[i]
		if !s.IsPending() {
			excluded.Resolved++
			continue
		}
		warehouse, ok := registry.Lookup(s.DestinationWarehouse)
		if !ok {
			excluded.Unassigned++
			continue
		}
		if !s.Scheduled() {
			excluded.Unscheduled++
			continue
		}
		pending.add(warehouse, *s.ArrivalWeek, s.BinVolume)
	}

	return pending, excluded
}
