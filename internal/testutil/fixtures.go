package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/google/uuid"
)

var testOrderRefCounter atomic.Int64

// Warehouse options
type WarehouseOption func(*domain.Warehouse)

func WithTotalBins(n int) WarehouseOption {
	return func(w *domain.Warehouse) {
		w.TotalBins = n
	}
}

func NewTestWarehouse(name string, opts ...WarehouseOption) *domain.Warehouse {
	now := time.Now().UTC()
	w := &domain.Warehouse{
		Name:      domain.NormalizeWarehouseName(name),
		TotalBins: 100,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Shipment options
type ShipmentOption func(*domain.Shipment)

func WithArrivalWeek(week int) ShipmentOption {
	return func(s *domain.Shipment) {
		s.ArrivalWeek = &week
	}
}

func WithoutArrivalWeek() ShipmentOption {
	return func(s *domain.Shipment) {
		s.ArrivalWeek = nil
	}
}

func WithBinVolume(v float64) ShipmentOption {
	return func(s *domain.Shipment) {
		s.BinVolume = v
	}
}

func WithShipmentStatus(status domain.ShipmentStatus) ShipmentOption {
	return func(s *domain.Shipment) {
		s.Status = status
	}
}

func WithOrderRef(ref string) ShipmentOption {
	return func(s *domain.Shipment) {
		s.OrderRef = ref
	}
}

// NewTestShipment returns a planned shipment of 10 bins arriving in the
// current ISO week.
func NewTestShipment(destination string, opts ...ShipmentOption) *domain.Shipment {
	now := time.Now().UTC()
	_, week := now.ISOWeek()
	s := &domain.Shipment{
		ID:                   uuid.New().String(),
		OrderRef:             fmt.Sprintf("PO-%04d", testOrderRefCounter.Add(1)),
		DestinationWarehouse: destination,
		ArrivalWeek:          &week,
		BinVolume:            10,
		Status:               domain.ShipmentPlanned,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
