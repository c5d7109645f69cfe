package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/google/uuid"
)

type shipmentService struct {
	shipments repository.ShipmentRepo
	uow       db.UnitOfWork
}

func NewShipmentService(shipments repository.ShipmentRepo, uow db.UnitOfWork) ShipmentService {
	return &shipmentService{shipments: shipments, uow: uow}
}

// Create validates and stores a manually entered shipment. Imported data is
// coerced by the importer instead; manual entries are held to stricter rules.
func (s *shipmentService) Create(ctx context.Context, sh *domain.Shipment) error {
	sh.OrderRef = strings.TrimSpace(sh.OrderRef)
	if sh.OrderRef == "" {
		return fmt.Errorf("order reference is required")
	}
	if sh.Status == "" {
		sh.Status = domain.ShipmentPlanned
	}
	if !domain.ValidShipmentStatuses[sh.Status] {
		return fmt.Errorf("unknown shipment status %q", sh.Status)
	}
	if sh.ArrivalWeek != nil && !sh.Scheduled() {
		return fmt.Errorf("arrival week must be between 1 and 53, got %d", *sh.ArrivalWeek)
	}
	if math.IsNaN(sh.BinVolume) || math.IsInf(sh.BinVolume, 0) || sh.BinVolume < 0 {
		return fmt.Errorf("bin volume must be a number >= 0, got %v", sh.BinVolume)
	}

	sh.DestinationWarehouse = domain.NormalizeWarehouseName(sh.DestinationWarehouse)
	if sh.ID == "" {
		sh.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sh.CreatedAt = now
	sh.UpdatedAt = now

	return s.shipments.Create(ctx, sh)
}

func (s *shipmentService) GetByID(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.shipments.GetByID(ctx, id)
}

func (s *shipmentService) List(ctx context.Context, filter repository.ShipmentFilter) ([]*domain.Shipment, error) {
	return s.shipments.List(ctx, filter)
}

// UpdateStatus moves a shipment through its lifecycle inside a transaction.
func (s *shipmentService) UpdateStatus(ctx context.Context, id string, status domain.ShipmentStatus) (*domain.Shipment, error) {
	var updated *domain.Shipment
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShipments := repository.NewSQLiteShipmentRepo(tx)

		sh, err := txShipments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := sh.ApplyStatus(status, time.Now().UTC()); err != nil {
			return err
		}
		if err := txShipments.Update(ctx, sh); err != nil {
			return err
		}
		updated = sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *shipmentService) Delete(ctx context.Context, id string) error {
	return s.shipments.Delete(ctx, id)
}
