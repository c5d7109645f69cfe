package contract

import "github.com/TGO0427/synercore-import-schedule-sub003/internal/app"

type ForecastRequest = app.ForecastRequest

func NewForecastRequest() ForecastRequest {
	return app.NewForecastRequest()
}

type AlertWeek = app.AlertWeek

type ForecastSummary = app.ForecastSummary

type ForecastResponse = app.ForecastResponse

type ForecastErrorCode = app.ForecastErrorCode

const (
	ForecastErrInvalidHorizon   ForecastErrorCode = app.ForecastErrInvalidHorizon
	ForecastErrInvalidStartWeek ForecastErrorCode = app.ForecastErrInvalidStartWeek
	ForecastErrInvalidScope     ForecastErrorCode = app.ForecastErrInvalidScope
	ForecastErrNoWarehouses     ForecastErrorCode = app.ForecastErrNoWarehouses
	ForecastErrInvalidRegistry  ForecastErrorCode = app.ForecastErrInvalidRegistry
)

type ForecastError = app.ForecastError

type ImportResult = app.ImportResult
