package domain

import "time"

// OccupancyEntry is the number of bins currently in use at a warehouse.
type OccupancyEntry struct {
	Warehouse string
	BinsUsed  float64
	UpdatedAt time.Time
}

// OccupancyChange is one audited edit of a warehouse's occupancy.
type OccupancyChange struct {
	ID           string
	Warehouse    string
	PreviousBins float64
	NewBins      float64
	Note         string
	ChangedAt    time.Time
}
