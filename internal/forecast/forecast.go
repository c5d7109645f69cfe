// Package forecast projects warehouse bin utilization over a rolling weekly
// horizon and classifies each week into severity tiers with advice.
//
// Every function in this package is pure: results depend only on the
// arguments, inputs are never modified and no clock is read. The caller
// supplies the starting week.
package forecast

import (
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// MaxHorizonWeeks caps the horizon below one ISO year so that a bare
// arrival week number never maps to two buckets.
const MaxHorizonWeeks = 52

type InputErrorCode string

const (
	ErrInvalidRegistry  InputErrorCode = "INVALID_REGISTRY"
	ErrInvalidStartWeek InputErrorCode = "INVALID_START_WEEK"
	ErrInvalidHorizon   InputErrorCode = "INVALID_HORIZON"
)

// InputError reports a caller contract violation. Dirty shipment data is
// never an InputError.
type InputError struct {
	Code    InputErrorCode
	Message string
}

func (e *InputError) Error() string {
	return string(e.Code) + ": " + e.Message
}

type options struct {
	horizon int
}

// Option adjusts a Generate call.
type Option func(*options)

// WithHorizon sets the number of weeks to project.
func WithHorizon(weeks int) Option {
	return func(o *options) {
		o.horizon = weeks
	}
}

// Generate builds the forecast: classify shipments, accumulate occupancy per
// week, classify alerts and attach recommendations. Buckets are ordered by
// offset from startWeek.
func Generate(
	shipments []domain.Shipment,
	occupancy map[string]float64,
	registry domain.Registry,
	startWeek calendar.Week,
	opts ...Option,
) ([]WeekBucket, error) {
	o := options{horizon: DefaultHorizonWeeks}
	for _, opt := range opts {
		opt(&o)
	}

	if registry == nil {
		return nil, &InputError{Code: ErrInvalidRegistry, Message: "warehouse registry is required"}
	}
	if !startWeek.Valid() {
		return nil, &InputError{
			Code:    ErrInvalidStartWeek,
			Message: fmt.Sprintf("week %d is outside ISO year %d", startWeek.Number, startWeek.Year),
		}
	}
	if o.horizon <= 0 || o.horizon > MaxHorizonWeeks {
		return nil, &InputError{
			Code:    ErrInvalidHorizon,
			Message: fmt.Sprintf("horizon must be between 1 and %d weeks, got %d", MaxHorizonWeeks, o.horizon),
		}
	}

	buckets := Accumulate(AccumulateInput{
		StartWeek:    startWeek,
		HorizonWeeks: o.horizon,
		Registry:     registry,
		Occupancy:    occupancy,
		Pending:      ClassifyShipments(shipments, registry),
	})

	for i := range buckets {
		b := &buckets[i]
		tiers := make([]domain.AlertTier, 0, len(b.WarehouseNames))
		for _, name := range b.WarehouseNames {
			tiers = append(tiers, b.Warehouses[name].Alert)
		}
		b.TotalAlert = MaxAlert(tiers...)
		b.Recommendation = Recommend(b.Label, b.Warehouses)
	}
	return buckets, nil
}
