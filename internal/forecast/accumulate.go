package forecast

import (
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultHorizonWeeks is the number of weeks projected when none is given.
const DefaultHorizonWeeks = 8

// LabelThisWeek labels the bucket at offset 0.
const LabelThisWeek = "This Week"

var hundred = decimal.NewFromInt(100)

// WarehouseWeek is one warehouse's projected state in one week.
type WarehouseWeek struct {
	Capacity          int
	ProjectedBinsUsed float64
	PercentUsed       int
	Alert             domain.AlertTier
}

// WeekBucket is one row of the forecast. Buckets are never modified after
// Generate returns them.
type WeekBucket struct {
	Offset         int
	Week           calendar.Week
	Label          string
	Warehouses     map[string]WarehouseWeek
	WarehouseNames []string // sorted keys of Warehouses
	TotalAlert     domain.AlertTier
	Recommendation *Recommendation
}

type AccumulateInput struct {
	StartWeek    calendar.Week
	HorizonWeeks int
	Registry     domain.Registry
	Occupancy    map[string]float64
	Pending      PendingInflow
}

// Accumulate projects occupancy week by week: each warehouse starts at its
// current occupancy and adds that week's inflow on top of every earlier
// week's. Nothing is ever released, so projections never decrease.
func Accumulate(in AccumulateInput) []WeekBucket {
	horizon := in.HorizonWeeks
	if horizon <= 0 {
		horizon = DefaultHorizonWeeks
	}
	names := in.Registry.Names()

	running := make(map[string]decimal.Decimal, len(names))
	for _, name := range names {
		running[name] = decimal.Zero
	}
	// Occupancy keys resolve like shipment destinations; keys that differ
	// only in case or spacing sum into one warehouse.
	for raw, bins := range in.Occupancy {
		if name, ok := in.Registry.Lookup(raw); ok {
			running[name] = running[name].Add(nonNegative(bins))
		}
	}

	buckets := make([]WeekBucket, 0, horizon)
	for i := 0; i < horizon; i++ {
		week := in.StartWeek.AddWeeks(i)
		bucket := WeekBucket{
			Offset:         i,
			Week:           week,
			Label:          weekLabel(i, week),
			Warehouses:     make(map[string]WarehouseWeek, len(names)),
			WarehouseNames: append([]string(nil), names...),
			TotalAlert:     domain.AlertOK,
		}

		for _, name := range names {
			projected := running[name].Add(inflowDecimal(in.Pending, name, week.Number))
			running[name] = projected

			capacity := in.Registry[name].TotalBins
			pct := percentUsed(projected, capacity)
			alert := domain.AlertOK
			if capacity > 0 {
				alert = ClassifyAlert(pct)
			}

			bucket.Warehouses[name] = WarehouseWeek{
				Capacity:          capacity,
				ProjectedBinsUsed: projected.InexactFloat64(),
				PercentUsed:       pct,
				Alert:             alert,
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// percentUsed rounds half away from zero. Missing or zero capacity reports 0.
func percentUsed(projected decimal.Decimal, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(projected.Mul(hundred).Div(decimal.NewFromInt(int64(capacity))).Round(0).IntPart())
}

func weekLabel(offset int, week calendar.Week) string {
	if offset == 0 {
		return LabelThisWeek
	}
	return fmt.Sprintf("Week %d", week.Number)
}
