package cli

import (
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/app"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Warehouses service.WarehouseService
	Occupancy  service.OccupancyService
	Shipments  service.ShipmentService
	Forecast   service.ForecastService
	Import     service.ImportService

	// Optional use-case overrides; nil falls back to the services above.
	RunForecast    app.ForecastUseCase
	ImportSnapshot app.ImportSnapshotUseCase

	// IsInteractive reports whether forms may prompt on stdin. Nil means never.
	IsInteractive func() bool

	// RunForm and RunProgram drive huh forms and bubbletea programs. Nil
	// values use the real terminal.
	RunForm    func(*huh.Form) error
	RunProgram func(tea.Model) error
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) runForm(form *huh.Form) error {
	if app.RunForm != nil {
		return app.RunForm(form)
	}
	return form.Run()
}

func (app *App) runProgram(model tea.Model) error {
	if app.RunProgram != nil {
		return app.RunProgram(model)
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "synercore" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "synercore",
		Short:         "Warehouse capacity forecasting for inbound shipments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newForecastCmd(app),
		newWarehouseCmd(app),
		newOccupancyCmd(app),
		newShipmentCmd(app),
		newImportCmd(app),
	)

	return root
}
