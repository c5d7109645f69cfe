package cli

import (
	"context"
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
	"github.com/spf13/cobra"
)

func newForecastCmd(app *App) *cobra.Command {
	var (
		week        weekFlag
		horizon     int
		warehouses  []string
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project bin utilization for the coming weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewForecastRequest()
			if week.set {
				w := week.week
				req.StartWeek = &w
			}
			if cmd.Flags().Changed("horizon") && horizon == 0 {
				return fmt.Errorf("--horizon must be between 1 and %d", forecast.MaxHorizonWeeks)
			}
			req.HorizonWeeks = horizon
			req.WarehouseScope = warehouses

			if interactive {
				return app.runProgram(newForecastView(func() (*contract.ForecastResponse, error) {
					return app.forecastUseCase().Forecast(context.Background(), req)
				}))
			}

			resp, err := app.forecastUseCase().Forecast(context.Background(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeForecastJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForecast(resp))
			return nil
		},
	}

	cmd.Flags().Var(&week, "week", "First week to forecast, e.g. 2026-W42 (default current week)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, fmt.Sprintf("Number of weeks to project, 1-%d (default from config)", forecast.MaxHorizonWeeks))
	cmd.Flags().StringSliceVar(&warehouses, "warehouse", nil, "Limit the forecast to these warehouses")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the forecast as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the forecast week by week")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	return cmd
}
