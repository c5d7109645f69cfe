package cli

import "github.com/TGO0427/synercore-import-schedule-sub003/internal/app"

func (a *App) forecastUseCase() app.ForecastUseCase {
	if a.RunForecast != nil {
		return a.RunForecast
	}
	return a.Forecast
}

func (a *App) importSnapshotUseCase() app.ImportSnapshotUseCase {
	if a.ImportSnapshot != nil {
		return a.ImportSnapshot
	}
	return a.Import
}
