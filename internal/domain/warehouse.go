package domain

import (
	"sort"
	"strings"
	"time"
)

type Warehouse struct {
	Name      string
	TotalBins int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Registry maps a normalized warehouse name to its configuration.
type Registry map[string]Warehouse

// NewRegistry builds a Registry keyed by normalized name. Later entries
// replace earlier ones with the same name.
func NewRegistry(warehouses ...Warehouse) Registry {
	r := make(Registry, len(warehouses))
	for _, w := range warehouses {
		w.Name = NormalizeWarehouseName(w.Name)
		r[w.Name] = w
	}
	return r
}

// Names returns the registry keys in ascending order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a raw destination string against the registry, trying
// the exact key before the normalized one. It returns the matching key.
func (r Registry) Lookup(raw string) (string, bool) {
	if _, ok := r[raw]; ok {
		return raw, true
	}
	name := NormalizeWarehouseName(raw)
	if _, ok := r[name]; ok {
		return name, true
	}
	return "", false
}

// NormalizeWarehouseName trims and upper-cases a facility name so that
// "pretoria " and "PRETORIA" address the same warehouse.
func NormalizeWarehouseName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
