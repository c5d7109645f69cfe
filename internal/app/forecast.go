package app

import (
	"time"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/calendar"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
)

type ForecastRequest struct {
	Now            *time.Time
	StartWeek      *calendar.Week // overrides the week derived from Now
	HorizonWeeks   int            // 0 uses the configured default
	WarehouseScope []string
}

func NewForecastRequest() ForecastRequest {
	return ForecastRequest{}
}

// AlertWeek identifies the first bucket whose total tier is not ok.
type AlertWeek struct {
	Week  calendar.Week
	Label string
	Tier  domain.AlertTier
}

type ForecastSummary struct {
	WarehouseCount   int
	PendingShipments int
	Excluded         forecast.Exclusions
	TierCounts       map[domain.AlertTier]int
	FirstAlert       *AlertWeek
	PeakPercent      int
	PeakWarehouse    string
	PeakWeek         calendar.Week
}

type ForecastResponse struct {
	GeneratedAt  time.Time
	StartWeek    calendar.Week
	HorizonWeeks int
	Weeks        []forecast.WeekBucket
	Summary      ForecastSummary
	Warnings     []string
}

type ForecastErrorCode string

const (
	ForecastErrInvalidHorizon   ForecastErrorCode = "INVALID_HORIZON"
	ForecastErrInvalidStartWeek ForecastErrorCode = "INVALID_START_WEEK"
	ForecastErrInvalidScope     ForecastErrorCode = "INVALID_SCOPE"
	ForecastErrNoWarehouses     ForecastErrorCode = "NO_WAREHOUSES"
	ForecastErrInvalidRegistry  ForecastErrorCode = "INVALID_REGISTRY"
)

type ForecastError struct {
	Code    ForecastErrorCode
	Message string
}

func (e *ForecastError) Error() string {
	return string(e.Code) + ": " + e.Message
}
