package cli

import (
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*weekFlag)(nil)
	_ pflag.Value = (*statusListFlag)(nil)
)

// weekFlag parses an ISO week such as 2026-W42.
type weekFlag struct {
	week calendar.Week
	set  bool
}

func (f *weekFlag) String() string {
	if !f.set {
		return ""
	}
	return f.week.String()
}

func (f *weekFlag) Set(s string) error {
	w, err := calendar.ParseWeek(s)
	if err != nil {
		return err
	}
	f.week = w
	f.set = true
	return nil
}

func (f *weekFlag) Type() string { return "week" }

// statusListFlag collects shipment statuses from repeated or comma-separated
// values, accepting the same spellings as imports.
type statusListFlag struct {
	statuses []domain.ShipmentStatus
}

func (f *statusListFlag) String() string {
	parts := make([]string, len(f.statuses))
	for i, s := range f.statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func (f *statusListFlag) Set(s string) error {
	for _, raw := range strings.Split(s, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		status, ok := domain.ParseShipmentStatus(raw)
		if !ok {
			return fmt.Errorf("unknown shipment status %q", raw)
		}
		f.statuses = append(f.statuses, status)
	}
	return nil
}

func (f *statusListFlag) Type() string { return "statuses" }
