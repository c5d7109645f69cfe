package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// FormatWarehouseList renders the registry with current occupancy.
func FormatWarehouseList(warehouses []*domain.Warehouse, occupancy map[string]float64) string {
	cols := []Column{
		{Title: "WAREHOUSE"},
		{Title: "CAPACITY", Right: true},
		{Title: "IN USE", Right: true},
		{Title: "UTILIZATION", Right: true},
	}
	rows := make([][]string, 0, len(warehouses))
	for _, w := range warehouses {
		used, ok := occupancy[w.Name]
		inUse := Dim("--")
		util := Dim("--")
		if ok {
			inUse = FormatBins(used)
			if w.TotalBins > 0 {
				util = fmt.Sprintf("%.0f%%", used*100/float64(w.TotalBins))
			}
		}
		rows = append(rows, []string{Bold(w.Name), strconv.Itoa(w.TotalBins), inUse, util})
	}
	return RenderColumns(cols, rows)
}

// FormatOccupancyList renders the current occupancy snapshot.
func FormatOccupancyList(entries []*domain.OccupancyEntry) string {
	headers := []string{"WAREHOUSE", "BINS USED", "UPDATED"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{Bold(e.Warehouse), FormatBins(e.BinsUsed), Dim(Timestamp(e.UpdatedAt))})
	}
	return RenderTable(headers, rows)
}

// FormatOccupancyHistory renders audit rows, newest first.
func FormatOccupancyHistory(changes []*domain.OccupancyChange) string {
	headers := []string{"CHANGED", "FROM", "TO", "NOTE"}
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		note := c.Note
		if note == "" {
			note = Dim("--")
		}
		rows = append(rows, []string{Dim(Timestamp(c.ChangedAt)), FormatBins(c.PreviousBins), FormatBins(c.NewBins), note})
	}
	return RenderTable(headers, rows)
}

// FormatShipmentList renders shipments in arrival order.
func FormatShipmentList(shipments []*domain.Shipment) string {
	headers := []string{"ID", "ORDER", "WAREHOUSE", "WEEK", "BINS", "STATUS"}
	rows := make([][]string, 0, len(shipments))
	for _, s := range shipments {
		dest := s.DestinationWarehouse
		if dest == "" {
			dest = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			s.OrderRef,
			dest,
			FormatWeekNumber(s.ArrivalWeek),
			FormatBins(s.BinVolume),
			StatusPill(s.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatImportResult summarizes a snapshot import.
func FormatImportResult(result *contract.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d warehouses, %d occupancy entries, %d shipments\n",
		StyleGreen.Render("Imported"), result.Warehouses, result.OccupancyEntries, result.Shipments)
	for _, w := range result.Warnings {
		b.WriteString(StyleYellow.Render("! "))
		b.WriteString(w)
		b.WriteString("\n")
	}
	return b.String()
}
