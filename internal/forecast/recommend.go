package forecast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
)

// Recommendation is the advice attached to a week whose worst tier is not ok.
type Recommendation struct {
	Tier       domain.AlertTier
	Message    string
	Action     string
	Warehouses []string // flagged warehouses, sorted
	DivertTo   string   // empty when no warehouse can take diverted volume
}

// Recommend derives the advice for one week from its per-warehouse entries.
// It returns nil when every warehouse is ok.
//
// The flagged warehouses are those at the week's worst tier. For critical and
// overflow weeks, volume is diverted to the least-utilized unflagged
// warehouse, ties going to the alphabetically first name. Flagged
// warehouses are never divert targets, so the advice never sends volume to
// another warehouse in the same alert.
func Recommend(weekLabel string, entries map[string]WarehouseWeek) *Recommendation {
	names := make([]string, 0, len(entries))
	tiers := make([]domain.AlertTier, 0, len(entries))
	for name, e := range entries {
		names = append(names, name)
		tiers = append(tiers, e.Alert)
	}
	sort.Strings(names)

	total := MaxAlert(tiers...)
	if total == domain.AlertOK {
		return nil
	}

	var flagged, others []string
	for _, name := range names {
		if entries[name].Alert == total {
			flagged = append(flagged, name)
		} else {
			others = append(others, name)
		}
	}

	when := weekPhrase(weekLabel)
	rec := &Recommendation{Tier: total, Warehouses: flagged}

	switch total {
	case domain.AlertWarning:
		rec.Message = fmt.Sprintf("%s approaching capacity %s", describe(flagged, entries), when)
		rec.Action = fmt.Sprintf("Review upcoming inbound volume for %s", strings.Join(flagged, ", "))
	default:
		verb := "will reach capacity"
		if total == domain.AlertOverflow {
			verb = "will exceed capacity"
		}
		rec.Message = fmt.Sprintf("%s %s %s", describe(flagged, entries), verb, when)

		target, ok := leastUtilized(others, entries)
		if ok {
			rec.DivertTo = target
			rec.Action = fmt.Sprintf("Divert incoming volume to %s (%d%% projected)", target, entries[target].PercentUsed)
		} else {
			rec.Action = fmt.Sprintf("Reschedule or split inbound shipments for %s", strings.Join(flagged, ", "))
		}
	}
	return rec
}

// leastUtilized picks the lowest PercentUsed among names, which must be
// sorted so the first minimum wins ties. Warehouses without configured
// capacity cannot receive volume.
func leastUtilized(names []string, entries map[string]WarehouseWeek) (string, bool) {
	best := ""
	for _, name := range names {
		if entries[name].Capacity <= 0 {
			continue
		}
		if best == "" || entries[name].PercentUsed < entries[best].PercentUsed {
			best = name
		}
	}
	return best, best != ""
}

func describe(names []string, entries map[string]WarehouseWeek) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d%%)", name, entries[name].PercentUsed)
	}
	return strings.Join(parts, ", ")
}

func weekPhrase(label string) string {
	if label == LabelThisWeek {
		return "this week"
	}
	return "in " + label
}
