package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
)

type forecastJSON struct {
	GeneratedAt  time.Time   `json:"generated_at"`
	StartWeek    string      `json:"start_week"`
	HorizonWeeks int         `json:"horizon_weeks"`
	Weeks        []weekJSON  `json:"weeks"`
	Summary      summaryJSON `json:"summary"`
	Warnings     []string    `json:"warnings"`
}

type weekJSON struct {
	Offset         int                 `json:"offset"`
	Week           string              `json:"week"`
	Label          string              `json:"label"`
	TotalAlert     domain.AlertTier    `json:"total_alert"`
	Color          forecast.Color      `json:"color"`
	Warehouses     []warehouseWeekJSON `json:"warehouses"`
	Recommendation *recommendationJSON `json:"recommendation"`
}

type warehouseWeekJSON struct {
	Name              string           `json:"name"`
	Capacity          int              `json:"capacity"`
	ProjectedBinsUsed float64          `json:"projected_bins_used"`
	PercentUsed       int              `json:"percent_used"`
	Alert             domain.AlertTier `json:"alert"`
}

type recommendationJSON struct {
	Tier       domain.AlertTier `json:"tier"`
	Message    string           `json:"message"`
	Action     string           `json:"action"`
	Warehouses []string         `json:"warehouses"`
	DivertTo   string           `json:"divert_to,omitempty"`
}

type summaryJSON struct {
	WarehouseCount   int                      `json:"warehouse_count"`
	PendingShipments int                      `json:"pending_shipments"`
	Excluded         map[string]int           `json:"excluded"`
	TierCounts       map[domain.AlertTier]int `json:"tier_counts"`
	FirstAlertWeek   string                   `json:"first_alert_week,omitempty"`
	PeakPercent      int                      `json:"peak_percent"`
	PeakWarehouse    string                   `json:"peak_warehouse,omitempty"`
	PeakWeek         string                   `json:"peak_week,omitempty"`
}

func toForecastJSON(resp *contract.ForecastResponse) forecastJSON {
	out := forecastJSON{
		GeneratedAt:  resp.GeneratedAt,
		StartWeek:    resp.StartWeek.String(),
		HorizonWeeks: resp.HorizonWeeks,
		Weeks:        make([]weekJSON, 0, len(resp.Weeks)),
		Warnings:     append([]string{}, resp.Warnings...),
	}

	for _, b := range resp.Weeks {
		w := weekJSON{
			Offset:     b.Offset,
			Week:       b.Week.String(),
			Label:      b.Label,
			TotalAlert: b.TotalAlert,
			Color:      forecast.ColorFor(b.TotalAlert),
			Warehouses: make([]warehouseWeekJSON, 0, len(b.WarehouseNames)),
		}
		for _, name := range b.WarehouseNames {
			e := b.Warehouses[name]
			w.Warehouses = append(w.Warehouses, warehouseWeekJSON{
				Name:              name,
				Capacity:          e.Capacity,
				ProjectedBinsUsed: e.ProjectedBinsUsed,
				PercentUsed:       e.PercentUsed,
				Alert:             e.Alert,
			})
		}
		if rec := b.Recommendation; rec != nil {
			w.Recommendation = &recommendationJSON{
				Tier:       rec.Tier,
				Message:    rec.Message,
				Action:     rec.Action,
				Warehouses: rec.Warehouses,
				DivertTo:   rec.DivertTo,
			}
		}
		out.Weeks = append(out.Weeks, w)
	}

	sum := resp.Summary
	out.Summary = summaryJSON{
		WarehouseCount:   sum.WarehouseCount,
		PendingShipments: sum.PendingShipments,
		Excluded: map[string]int{
			"resolved":    sum.Excluded.Resolved,
			"unassigned":  sum.Excluded.Unassigned,
			"unscheduled": sum.Excluded.Unscheduled,
		},
		TierCounts:    sum.TierCounts,
		PeakPercent:   sum.PeakPercent,
		PeakWarehouse: sum.PeakWarehouse,
	}
	if sum.FirstAlert != nil {
		out.Summary.FirstAlertWeek = sum.FirstAlert.Week.String()
	}
	if sum.PeakWarehouse != "" {
		out.Summary.PeakWeek = sum.PeakWeek.String()
	}
	return out
}

func writeForecastJSON(w io.Writer, resp *contract.ForecastResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toForecastJSON(resp))
}
