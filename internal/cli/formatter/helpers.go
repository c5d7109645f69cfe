package formatter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatBins prints a bin count with at most one decimal place.
func FormatBins(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// FormatWeekNumber prints an arrival week, or "--" when unscheduled.
func FormatWeekNumber(week *int) string {
	if week == nil {
		return "--"
	}
	return "W" + strconv.Itoa(*week)
}

// StatusPill returns a colored lifecycle indicator for a shipment.
func StatusPill(status domain.ShipmentStatus) string {
	label := strings.ReplaceAll(string(status), "_", " ")
	switch {
	case status == domain.ShipmentCancelled:
		return StyleDim.Render("✖ " + label)
	case status.Resolved():
		return StyleDim.Render("✔ " + label)
	case status == domain.ShipmentDelayed:
		return StyleYellow.Render("▲ " + label)
	case status == domain.ShipmentPlanned:
		return StyleBlue.Render("○ " + label)
	default:
		return StyleGreen.Render("● " + label)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Timestamp prints a UTC time the way audit listings show it.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
