package domain

import (
	"fmt"
	"time"
)

// Shipment is an inbound order headed for a warehouse. ArrivalWeek is an
// ISO week number (1-53) with no year; nil means the arrival is unscheduled.
type Shipment struct {
	ID                   string
	OrderRef             string
	DestinationWarehouse string
	ArrivalWeek          *int
	BinVolume            float64
	Status               ShipmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the shipment still counts as future inflow.
func (s *Shipment) IsPending() bool {
	return !s.Status.Resolved()
}

// Scheduled reports whether the arrival week can be placed on the timeline.
func (s *Shipment) Scheduled() bool {
	return s.ArrivalWeek != nil && *s.ArrivalWeek >= 1 && *s.ArrivalWeek <= 53
}

// ApplyStatus moves the shipment to a new lifecycle state. Archived
// shipments are frozen.
func (s *Shipment) ApplyStatus(status ShipmentStatus, now time.Time) error {
	if !ValidShipmentStatuses[status] {
		return fmt.Errorf("unknown shipment status %q", status)
	}
	if s.Status == ShipmentArchived && status != ShipmentArchived {
		return fmt.Errorf("shipment %s is archived", s.OrderRef)
	}
	s.Status = status
	s.UpdatedAt = now
	return nil
}
