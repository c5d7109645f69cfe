package formatter

import (
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
)

// OperatingNormally is shown for weeks with no recommendation.
const OperatingNormally = "Operating normally"

// FormatForecast renders the full forecast: a week-by-warehouse grid, the
// advice for every alerting week and any warnings.
func FormatForecast(resp *contract.ForecastResponse) string {
	var b strings.Builder

	title := fmt.Sprintf("Capacity forecast %s (%d weeks)", resp.StartWeek, resp.HorizonWeeks)
	b.WriteString(Header(title))
	b.WriteString("\n\n")
	b.WriteString(ForecastTable(resp.Weeks))

	b.WriteString("\n")
	b.WriteString(Header("Recommendations"))
	b.WriteString("\n")
	advised := 0
	for _, w := range resp.Weeks {
		if w.Recommendation == nil {
			continue
		}
		advised++
		b.WriteString(formatRecommendation(w))
	}
	if advised == 0 {
		b.WriteString(StyleGreen.Render(OperatingNormally))
		b.WriteString(Dim(" across the horizon"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatForecastSummary(resp.Summary))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Warnings"))
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("! "))
			b.WriteString(w)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ForecastTable renders one row per week in offset order and one column per
// warehouse, followed by the week's overall tier.
func ForecastTable(weeks []forecast.WeekBucket) string {
	if len(weeks) == 0 {
		return Dim("No weeks to show.") + "\n"
	}

	names := weeks[0].WarehouseNames
	cols := make([]Column, 0, len(names)+2)
	cols = append(cols, Column{Title: "WEEK"})
	for _, name := range names {
		cols = append(cols, Column{Title: name, Right: true})
	}
	cols = append(cols, Column{Title: "TOTAL"})

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		row := make([]string, 0, len(cols))
		row = append(row, w.Label)
		for _, name := range names {
			row = append(row, WarehouseCell(w.Warehouses[name]))
		}
		row = append(row, TierStyle(w.TotalAlert).Render(forecast.LabelFor(w.TotalAlert)))
		rows = append(rows, row)
	}
	return RenderColumns(cols, rows)
}

// WarehouseCell renders "bins/capacity pct%" in the entry's tier color.
// Warehouses without capacity show "--".
func WarehouseCell(e forecast.WarehouseWeek) string {
	if e.Capacity <= 0 {
		return Dim(FormatBins(e.ProjectedBinsUsed) + "/-- --")
	}
	text := fmt.Sprintf("%s/%d %d%%", FormatBins(e.ProjectedBinsUsed), e.Capacity, e.PercentUsed)
	return TierStyle(e.Alert).Render(text)
}

func formatRecommendation(w forecast.WeekBucket) string {
	rec := w.Recommendation
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(fmt.Sprintf("%-9s", w.Label)), TierBadge(rec.Tier), rec.Message)
	fmt.Fprintf(&b, "%s  %s %s\n", strings.Repeat(" ", 9), Dim("→"), rec.Action)
	return b.String()
}

// FormatWeekDetail renders one forecast week with a utilization bar per
// warehouse and the week's advice.
func FormatWeekDetail(w forecast.WeekBucket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n", Bold(w.Label), Dim(w.Week.String()), TierBadge(w.TotalAlert))

	width := 0
	for _, name := range w.WarehouseNames {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range w.WarehouseNames {
		e := w.Warehouses[name]
		fmt.Fprintf(&b, "%-*s  %s  %s\n", width, name, RenderUtilization(e.PercentUsed, 20, e.Alert), Dim(WarehouseCellPlain(e)))
	}

	b.WriteString("\n")
	if w.Recommendation == nil {
		b.WriteString(StyleGreen.Render(OperatingNormally))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(w.Recommendation.Message)
	b.WriteString("\n")
	b.WriteString(Dim("→ "))
	b.WriteString(w.Recommendation.Action)
	b.WriteString("\n")
	return b.String()
}

// WarehouseCellPlain is WarehouseCell without styling.
func WarehouseCellPlain(e forecast.WarehouseWeek) string {
	if e.Capacity <= 0 {
		return FormatBins(e.ProjectedBinsUsed) + " bins, no capacity"
	}
	return fmt.Sprintf("%s/%d bins", FormatBins(e.ProjectedBinsUsed), e.Capacity)
}

// FormatForecastSummary renders the tier counts, first alert and peak.
func FormatForecastSummary(sum contract.ForecastSummary) string {
	var b strings.Builder

	parts := make([]string, 0, len(domain.AlertTiers))
	for _, tier := range domain.AlertTiers {
		parts = append(parts, TierStyle(tier).Render(fmt.Sprintf("%s %d", forecast.LabelFor(tier), sum.TierCounts[tier])))
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Weeks:"), strings.Join(parts, Dim(" · ")))

	if sum.FirstAlert != nil {
		fmt.Fprintf(&b, "%s %s (%s) %s\n", Dim("First alert:"), sum.FirstAlert.Label, sum.FirstAlert.Week, TierBadge(sum.FirstAlert.Tier))
	}
	if sum.PeakWarehouse != "" {
		fmt.Fprintf(&b, "%s %s at %d%% in %s\n", Dim("Peak:"), sum.PeakWarehouse, sum.PeakPercent, sum.PeakWeek)
	}
	fmt.Fprintf(&b, "%s %d pending, %d excluded (%d resolved, %d unassigned, %d unscheduled)\n",
		Dim("Shipments:"), sum.PendingShipments, sum.Excluded.Total(),
		sum.Excluded.Resolved, sum.Excluded.Unassigned, sum.Excluded.Unscheduled)
	return b.String()
}
