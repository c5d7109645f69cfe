package cli

import (
	"context"
	"fmt"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOccupancyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "occupancy",
		Aliases: []string{"occ"},
		Short:   "Record and inspect bins currently in use",
	}

	cmd.AddCommand(
		newOccupancySetCmd(app),
		newOccupancyShowCmd(app),
		newOccupancyHistoryCmd(app),
	)

	return cmd
}

func newOccupancySetCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "set NAME BINS",
		Short: "Set the bins in use at a warehouse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bins, err := parseBins(args[1])
			if err != nil {
				return err
			}
			change, err := app.Occupancy.Set(context.Background(), args[0], bins, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s → %s bins\n",
				change.Warehouse, formatter.FormatBins(change.PreviousBins), formatter.FormatBins(change.NewBins))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Reason for the change, kept in the history")

	return cmd
}

func newOccupancyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current occupancy per warehouse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Occupancy.List(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No occupancy recorded.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOccupancyList(entries))
			return nil
		},
	}
}

func newOccupancyHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history NAME",
		Short: "Show occupancy changes for a warehouse, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := app.Occupancy.History(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No occupancy changes recorded.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOccupancyHistory(changes))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of changes to show (0 for all)")

	return cmd
}
