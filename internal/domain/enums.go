package domain

import "strings"

// AlertTier is the capacity severity of a warehouse in a forecast week.
type AlertTier string

const (
	AlertOK       AlertTier = "ok"
	AlertWarning  AlertTier = "warning"
	AlertCritical AlertTier = "critical"
	AlertOverflow AlertTier = "overflow"
)

// AlertTiers lists every tier in increasing severity.
var AlertTiers = []AlertTier{AlertOK, AlertWarning, AlertCritical, AlertOverflow}

type ShipmentStatus string

const (
	ShipmentPlanned    ShipmentStatus = "planned"
	ShipmentInTransit  ShipmentStatus = "in_transit"
	ShipmentAtPort     ShipmentStatus = "at_port"
	ShipmentArrived    ShipmentStatus = "arrived"
	ShipmentUnloading  ShipmentStatus = "unloading"
	ShipmentInspecting ShipmentStatus = "inspecting"
	ShipmentReceiving  ShipmentStatus = "receiving"
	ShipmentStored     ShipmentStatus = "stored"
	ShipmentArchived   ShipmentStatus = "archived"
	ShipmentCancelled  ShipmentStatus = "cancelled"
	ShipmentDelayed    ShipmentStatus = "delayed"
)

// ValidShipmentStatuses is the canonical set of accepted lifecycle states.
var ValidShipmentStatuses = map[ShipmentStatus]bool{
	ShipmentPlanned: true, ShipmentInTransit: true, ShipmentAtPort: true,
	ShipmentArrived: true, ShipmentUnloading: true, ShipmentInspecting: true,
	ShipmentReceiving: true, ShipmentStored: true, ShipmentArchived: true,
	ShipmentCancelled: true, ShipmentDelayed: true,
}

// Resolved reports whether the shipment no longer adds future occupancy.
// Stored and archived volume is already part of the occupancy snapshot;
// cancelled volume never lands.
func (s ShipmentStatus) Resolved() bool {
	switch s {
	case ShipmentStored, ShipmentArchived, ShipmentCancelled:
		return true
	default:
		return false
	}
}

// ParseShipmentStatus accepts the canonical form as well as the hyphenated
// and spaced spellings used by upstream systems ("in-transit", "At Port").
func ParseShipmentStatus(s string) (ShipmentStatus, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if norm == "canceled" {
		norm = string(ShipmentCancelled)
	}
	status := ShipmentStatus(norm)
	return status, ValidShipmentStatuses[status]
}
