package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
)

type forecastService struct {
	warehouses     repository.WarehouseRepo
	occupancy      repository.OccupancyRepo
	shipments      repository.ShipmentRepo
	defaultHorizon int
	observer       UseCaseObserver
}

func NewForecastService(
	warehouses repository.WarehouseRepo,
	occupancy repository.OccupancyRepo,
	shipments repository.ShipmentRepo,
	defaultHorizon int,
	observers ...UseCaseObserver,
) ForecastService {
	if defaultHorizon <= 0 {
		defaultHorizon = forecast.DefaultHorizonWeeks
	}
	return &forecastService{
		warehouses:     warehouses,
		occupancy:      occupancy,
		shipments:      shipments,
		defaultHorizon: defaultHorizon,
		observer:       useCaseObserverOrNoop(observers),
	}
}

func (s *forecastService) Forecast(ctx context.Context, req contract.ForecastRequest) (resp *contract.ForecastResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		event := UseCaseEvent{
			Name:      "forecast",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		}
		if resp != nil {
			event.Warnings = resp.Warnings
		}
		s.observer.ObserveUseCase(ctx, event)
	}()

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	horizon := req.HorizonWeeks
	if horizon == 0 {
		horizon = s.defaultHorizon
	}
	if horizon < 0 || horizon > forecast.MaxHorizonWeeks {
		return nil, &contract.ForecastError{
			Code:    contract.ForecastErrInvalidHorizon,
			Message: fmt.Sprintf("horizon must be between 1 and %d weeks, got %d", forecast.MaxHorizonWeeks, horizon),
		}
	}

	start := calendar.Current(now)
	if req.StartWeek != nil {
		start = *req.StartWeek
	}
	if !start.Valid() {
		return nil, &contract.ForecastError{
			Code:    contract.ForecastErrInvalidStartWeek,
			Message: fmt.Sprintf("%s is not a valid ISO week", start),
		}
	}
	fields["start_week"] = start.String()
	fields["horizon_weeks"] = horizon

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	if len(registry) == 0 {
		return nil, &contract.ForecastError{
			Code:    contract.ForecastErrNoWarehouses,
			Message: "no warehouses registered; add one with 'synercore warehouse add'",
		}
	}
	scoped, err := scopeRegistry(registry, req.WarehouseScope)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.loadOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	shipments, err := s.loadShipments(ctx)
	if err != nil {
		return nil, err
	}

	// Exclusions are counted against the full registry so that scoping does
	// not report other warehouses' shipments as unassigned.
	pending, excluded := forecast.ClassifyShipmentsDetailed(shipments, registry)

	buckets, err := forecast.Generate(shipments, occupancy, scoped, start, forecast.WithHorizon(horizon))
	if err != nil {
		return nil, translateInputError(err)
	}

	summary := buildForecastSummary(buckets)
	summary.WarehouseCount = len(scoped)
	summary.PendingShipments = pending.Len()
	summary.Excluded = excluded

	warnings := forecastWarnings(scoped, occupancy, shipments, excluded, buckets)

	fields["warehouses"] = len(scoped)
	fields["shipments"] = len(shipments)
	fields["pending_shipments"] = pending.Len()
	fields["excluded_resolved"] = excluded.Resolved
	fields["excluded_unassigned"] = excluded.Unassigned
	fields["excluded_unscheduled"] = excluded.Unscheduled
	fields["capacity_warnings"] = len(warnings)
	fields["peak_percent"] = summary.PeakPercent

	return &contract.ForecastResponse{
		GeneratedAt:  now,
		StartWeek:    start,
		HorizonWeeks: horizon,
		Weeks:        buckets,
		Summary:      summary,
		Warnings:     warnings,
	}, nil
}

func (s *forecastService) loadRegistry(ctx context.Context) (domain.Registry, error) {
	list, err := s.warehouses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading warehouses: %w", err)
	}
	warehouses := make([]domain.Warehouse, len(list))
	for i, w := range list {
		warehouses[i] = *w
	}
	return domain.NewRegistry(warehouses...), nil
}

func (s *forecastService) loadOccupancy(ctx context.Context) (map[string]float64, error) {
	entries, err := s.occupancy.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading occupancy: %w", err)
	}
	snap := make(map[string]float64, len(entries))
	for _, e := range entries {
		snap[e.Warehouse] = e.BinsUsed
	}
	return snap, nil
}

func (s *forecastService) loadShipments(ctx context.Context) ([]domain.Shipment, error) {
	list, err := s.shipments.List(ctx, repository.ShipmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading shipments: %w", err)
	}
	shipments := make([]domain.Shipment, len(list))
	for i, sh := range list {
		shipments[i] = *sh
	}
	return shipments, nil
}

func scopeRegistry(registry domain.Registry, scope []string) (domain.Registry, error) {
	if len(scope) == 0 {
		return registry, nil
	}
	scoped := make(domain.Registry, len(scope))
	for _, raw := range scope {
		name, ok := registry.Lookup(raw)
		if !ok {
			return nil, &contract.ForecastError{
				Code:    contract.ForecastErrInvalidScope,
				Message: fmt.Sprintf("unknown warehouse %q", raw),
			}
		}
		scoped[name] = registry[name]
	}
	return scoped, nil
}

func translateInputError(err error) error {
	var inputErr *forecast.InputError
	if !errors.As(err, &inputErr) {
		return err
	}
	var code contract.ForecastErrorCode
	switch inputErr.Code {
	case forecast.ErrInvalidHorizon:
		code = contract.ForecastErrInvalidHorizon
	case forecast.ErrInvalidStartWeek:
		code = contract.ForecastErrInvalidStartWeek
	case forecast.ErrInvalidRegistry:
		code = contract.ForecastErrInvalidRegistry
	default:
		return err
	}
	return &contract.ForecastError{Code: code, Message: inputErr.Message}
}
