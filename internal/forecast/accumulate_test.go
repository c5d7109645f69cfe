package forecast

import (
	"testing"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate_RunningTotalCarriesForward(t *testing.T) {
	var p PendingInflow
	p.add("PRETORIA", 42, 15)
	p.add("PRETORIA", 44, 5)

	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 42},
		HorizonWeeks: 4,
		Registry:     domain.NewRegistry(domain.Warehouse{Name: "PRETORIA", TotalBins: 100}),
		Occupancy:    map[string]float64{"PRETORIA": 70},
		Pending:      p,
	})

	require.Len(t, buckets, 4)
	want := []float64{85, 85, 90, 90}
	for i, b := range buckets {
		assert.Equal(t, i, b.Offset)
		assert.Equal(t, want[i], b.Warehouses["PRETORIA"].ProjectedBinsUsed, "offset %d", i)
	}
	assert.Equal(t, 90, buckets[3].Warehouses["PRETORIA"].PercentUsed)
	assert.Equal(t, domain.AlertWarning, buckets[3].Warehouses["PRETORIA"].Alert)
}

func TestAccumulate_Labels(t *testing.T) {
	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 10},
		HorizonWeeks: 3,
		Registry:     testRegistry(),
	})
	require.Len(t, buckets, 3)
	assert.Equal(t, "This Week", buckets[0].Label)
	assert.Equal(t, "Week 11", buckets[1].Label)
	assert.Equal(t, "Week 12", buckets[2].Label)
	assert.Equal(t, []string{"KLAPMUTS", "PRETORIA"}, buckets[0].WarehouseNames)
}

func TestAccumulate_DefaultsHorizon(t *testing.T) {
	buckets := Accumulate(AccumulateInput{
		StartWeek: calendar.Week{Year: 2026, Number: 10},
		Registry:  testRegistry(),
	})
	assert.Len(t, buckets, DefaultHorizonWeeks)
}

func TestAccumulate_MissingOccupancyStartsAtZero(t *testing.T) {
	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 10},
		HorizonWeeks: 1,
		Registry:     testRegistry(),
		Occupancy:    map[string]float64{"PRETORIA": 40, "UNKNOWN": 500},
	})
	assert.Equal(t, 0.0, buckets[0].Warehouses["KLAPMUTS"].ProjectedBinsUsed)
	assert.Equal(t, 40.0, buckets[0].Warehouses["PRETORIA"].ProjectedBinsUsed)
	assert.NotContains(t, buckets[0].Warehouses, "UNKNOWN")
}

func TestAccumulate_ZeroCapacityReportsOK(t *testing.T) {
	var p PendingInflow
	p.add("EMPTY", 10, 40)

	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 10},
		HorizonWeeks: 2,
		Registry:     domain.NewRegistry(domain.Warehouse{Name: "EMPTY", TotalBins: 0}),
		Occupancy:    map[string]float64{"EMPTY": 10},
		Pending:      p,
	})
	for _, b := range buckets {
		e := b.Warehouses["EMPTY"]
		assert.Equal(t, 50.0, e.ProjectedBinsUsed)
		assert.Equal(t, 0, e.PercentUsed)
		assert.Equal(t, domain.AlertOK, e.Alert)
	}
}

func TestAccumulate_NegativeOccupancyClampedToZero(t *testing.T) {
	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 10},
		HorizonWeeks: 1,
		Registry:     testRegistry(),
		Occupancy:    map[string]float64{"PRETORIA": -30},
	})
	assert.Equal(t, 0.0, buckets[0].Warehouses["PRETORIA"].ProjectedBinsUsed)
}

func TestAccumulate_WrapsAcrossYearEnd(t *testing.T) {
	var p PendingInflow
	p.add("PRETORIA", 52, 10)
	p.add("PRETORIA", 1, 20)

	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2025, Number: 51},
		HorizonWeeks: 4,
		Registry:     testRegistry(),
		Pending:      p,
	})

	weeks := make([]int, len(buckets))
	for i, b := range buckets {
		weeks[i] = b.Week.Number
	}
	assert.Equal(t, []int{51, 52, 1, 2}, weeks)
	assert.Equal(t, calendar.Week{Year: 2026, Number: 1}, buckets[2].Week)
	assert.Equal(t, 0.0, buckets[0].Warehouses["PRETORIA"].ProjectedBinsUsed)
	assert.Equal(t, 10.0, buckets[1].Warehouses["PRETORIA"].ProjectedBinsUsed)
	assert.Equal(t, 30.0, buckets[2].Warehouses["PRETORIA"].ProjectedBinsUsed)
	assert.Equal(t, 30.0, buckets[3].Warehouses["PRETORIA"].ProjectedBinsUsed)
}

func TestPercentUsed_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		projected float64
		capacity  int
		want      int
	}{
		{79.4, 100, 79},
		{79.5, 100, 80},
		{94.5, 100, 95},
		{100.49, 100, 100},
		{100.5, 100, 101},
		{1, 3, 33},
		{2, 3, 67},
		{50, 0, 0},
		{50, -10, 0},
	}
	for _, tt := range tests {
		got := percentUsed(nonNegative(tt.projected), tt.capacity)
		assert.Equal(t, tt.want, got, "projected=%v capacity=%d", tt.projected, tt.capacity)
	}
}

func TestAccumulate_OccupancyKeysResolveThroughRegistry(t *testing.T) {
	var p PendingInflow
	p.add("PRETORIA", 42, 15)

	buckets := Accumulate(AccumulateInput{
		StartWeek:    calendar.Week{Year: 2026, Number: 42},
		HorizonWeeks: 2,
		Registry: domain.NewRegistry(
			domain.Warehouse{Name: "Pretoria", TotalBins: 100},
			domain.Warehouse{Name: "KLAPMUTS", TotalBins: 200},
		),
		Occupancy: map[string]float64{"Pretoria": 60, " pretoria ": 10, "klapmuts": 20, "DURBAN": 50},
		Pending:   p,
	})

	require.Len(t, buckets, 2)
	assert.Equal(t, []string{"KLAPMUTS", "PRETORIA"}, buckets[0].WarehouseNames, "unregistered occupancy is ignored")
	pta := buckets[0].Warehouses["PRETORIA"]
	assert.Equal(t, 85.0, pta.ProjectedBinsUsed)
	assert.Equal(t, 85, pta.PercentUsed)
	assert.Equal(t, domain.AlertWarning, pta.Alert)
	assert.Equal(t, 20.0, buckets[1].Warehouses["KLAPMUTS"].ProjectedBinsUsed)
}
