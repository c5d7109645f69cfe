package service

import (
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
)

// buildForecastSummary tallies weeks per total tier and finds the first
// alerting week and the highest projected utilization.
func buildForecastSummary(buckets []forecast.WeekBucket) contract.ForecastSummary {
	summary := contract.ForecastSummary{
		TierCounts: make(map[domain.AlertTier]int, len(domain.AlertTiers)),
	}
	for _, tier := range domain.AlertTiers {
		summary.TierCounts[tier] = 0
	}

	peakSet := false
	for _, b := range buckets {
		summary.TierCounts[b.TotalAlert]++
		if summary.FirstAlert == nil && b.TotalAlert != domain.AlertOK {
			summary.FirstAlert = &contract.AlertWeek{Week: b.Week, Label: b.Label, Tier: b.TotalAlert}
		}
		for _, name := range b.WarehouseNames {
			e := b.Warehouses[name]
			if e.Capacity <= 0 {
				continue
			}
			if !peakSet || e.PercentUsed > summary.PeakPercent {
				summary.PeakPercent = e.PercentUsed
				summary.PeakWarehouse = name
				summary.PeakWeek = b.Week
				peakSet = true
			}
		}
	}
	return summary
}

// forecastWarnings reports configuration and data problems that the engine
// tolerates silently.
func forecastWarnings(
	registry domain.Registry,
	occupancy map[string]float64,
	shipments []domain.Shipment,
	excluded forecast.Exclusions,
	buckets []forecast.WeekBucket,
) []string {
	var warnings []string

	for _, name := range registry.Names() {
		w := registry[name]
		if w.TotalBins <= 0 {
			warnings = append(warnings, fmt.Sprintf("warehouse %s has no capacity configured; utilization reported as 0%%", name))
		}
		bins, ok := occupancy[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no occupancy recorded for %s; assuming 0 bins", name))
		} else if w.TotalBins > 0 && bins > float64(w.TotalBins) {
			warnings = append(warnings, fmt.Sprintf("%s already holds %g bins, above its capacity of %d", name, bins, w.TotalBins))
		}
	}

	if excluded.Unassigned > 0 {
		warnings = append(warnings, fmt.Sprintf("%d pending shipment(s) reference unregistered warehouses and were excluded", excluded.Unassigned))
	}
	if excluded.Unscheduled > 0 {
		warnings = append(warnings, fmt.Sprintf("%d pending shipment(s) have no usable arrival week and were excluded", excluded.Unscheduled))
	}
	if n := outsideHorizon(registry, shipments, buckets); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d pending shipment(s) arrive outside the forecast horizon", n))
	}

	return warnings
}

// outsideHorizon counts pending, routable shipments whose arrival week
// number matches no bucket, typically overdue arrivals.
func outsideHorizon(registry domain.Registry, shipments []domain.Shipment, buckets []forecast.WeekBucket) int {
	inHorizon := make(map[int]bool, len(buckets))
	for _, b := range buckets {
		inHorizon[b.Week.Number] = true
	}
	n := 0
	for i := range shipments {
		sh := &shipments[i]
		if !sh.IsPending() || !sh.Scheduled() {
			continue
		}
		if _, ok := registry.Lookup(sh.DestinationWarehouse); !ok {
			continue
		}
		if !inHorizon[*sh.ArrivalWeek] {
			n++
		}
	}
	return n
}
