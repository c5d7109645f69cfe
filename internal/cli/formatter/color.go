package formatter

import (
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled switches styled output on or off for the whole process.
// When enabled the terminal's own profile is used.
func SetColorEnabled(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// TierStyle returns the style for a capacity tier, following the tier's
// palette color. Overflow is additionally bold.
func TierStyle(tier domain.AlertTier) lipgloss.Style {
	var style lipgloss.Style
	switch forecast.ColorFor(tier) {
	case forecast.ColorRed:
		style = StyleRed
	case forecast.ColorAmber:
		style = StyleYellow
	default:
		style = StyleGreen
	}
	if tier == domain.AlertOverflow {
		style = style.Bold(true)
	}
	return style
}

// TierBadge returns a colored tier indicator such as "● WARNING".
func TierBadge(tier domain.AlertTier) string {
	return TierStyle(tier).Render("● " + forecast.LabelFor(tier))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
