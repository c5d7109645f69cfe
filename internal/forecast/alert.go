package forecast

import "github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"

// Utilization thresholds, in whole percent.
const (
	WarningPct  = 80
	CriticalPct = 95
	OverflowPct = 100
)

// ClassifyAlert maps a utilization percentage to its tier. Tiers are tested
// from most to least severe so exactly one matches.
func ClassifyAlert(percentUsed int) domain.AlertTier {
	switch {
	case percentUsed > OverflowPct:
		return domain.AlertOverflow
	case percentUsed >= CriticalPct:
		return domain.AlertCritical
	case percentUsed >= WarningPct:
		return domain.AlertWarning
	default:
		return domain.AlertOK
	}
}

// AlertPriority returns the severity rank of a tier (higher = more severe).
func AlertPriority(tier domain.AlertTier) int {
	switch tier {
	case domain.AlertOverflow:
		return 3
	case domain.AlertCritical:
		return 2
	case domain.AlertWarning:
		return 1
	default:
		return 0
	}
}

// MaxAlert returns the most severe tier, or ok for no tiers.
func MaxAlert(tiers ...domain.AlertTier) domain.AlertTier {
	worst := domain.AlertOK
	for _, t := range tiers {
		if AlertPriority(t) > AlertPriority(worst) {
			worst = t
		}
	}
	return worst
}

// Color is a palette entry used by presenters to style a tier.
type Color string

const (
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
)

// ColorFor returns the palette color of a tier.
func ColorFor(tier domain.AlertTier) Color {
	switch tier {
	case domain.AlertOverflow, domain.AlertCritical:
		return ColorRed
	case domain.AlertWarning:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// LabelFor returns the display label of a tier.
func LabelFor(tier domain.AlertTier) string {
	switch tier {
	case domain.AlertOverflow:
		return "OVERFLOW"
	case domain.AlertCritical:
		return "CRITICAL"
	case domain.AlertWarning:
		return "WARNING"
	default:
		return "OK"
	}
}
