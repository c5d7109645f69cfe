package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWarehouseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "warehouse",
		Aliases: []string{"wh"},
		Short:   "Manage the warehouse registry",
	}

	cmd.AddCommand(
		newWarehouseAddCmd(app),
		newWarehouseListCmd(app),
		newWarehouseRemoveCmd(app),
	)

	return cmd
}

func newWarehouseAddCmd(app *App) *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Register a warehouse or change its capacity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			binsSet := cmd.Flags().Changed("bins")

			if name == "" || !binsSet {
				if !app.interactive() {
					return fmt.Errorf("warehouse name and --bins are required")
				}
				binsStr := ""
				if binsSet {
					binsStr = strconv.Itoa(bins)
				}
				if err := app.runForm(wizardWarehouse(&name, &binsStr)); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return err
				}
				v, err := strconv.Atoi(binsStr)
				if err != nil {
					return fmt.Errorf("invalid bins %q", binsStr)
				}
				bins = v
			}

			w, err := app.Warehouses.Upsert(context.Background(), name, bins)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved warehouse %s (%d bins)\n", w.Name, w.TotalBins)
			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 0, "Total bin capacity")

	return cmd
}

func newWarehouseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered warehouses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			warehouses, err := app.Warehouses.List(ctx)
			if err != nil {
				return err
			}
			if len(warehouses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No warehouses registered.")
				return nil
			}
			occupancy, err := app.Occupancy.Snapshot(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWarehouseList(warehouses, occupancy))
			return nil
		},
	}
}

func newWarehouseRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a warehouse and its occupancy history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := app.Warehouses.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if !force && app.interactive() {
				confirmed := false
				prompt := fmt.Sprintf("Remove %s and its occupancy history?", w.Name)
				if err := app.runForm(wizardConfirm(prompt, &confirmed)); err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Warehouses.Delete(ctx, w.Name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed warehouse %s\n", w.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
