package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/domain"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/repository"
	"github.com/spf13/cobra"
)

// resolveShipmentID accepts a full ID, an order reference or an unambiguous
// ID prefix.
func resolveShipmentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("shipment ID is required")
	}

	shipments, err := app.Shipments.List(ctx, repository.ShipmentFilter{})
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, s := range shipments {
		if s.ID == input {
			return s.ID, nil
		}
	}

	// 2. Order reference match (case-insensitive), only when unique
	var refMatches []string
	for _, s := range shipments {
		if strings.EqualFold(s.OrderRef, input) {
			refMatches = append(refMatches, s.ID)
		}
	}
	if len(refMatches) == 1 {
		return refMatches[0], nil
	}
	if len(refMatches) > 1 {
		return "", fmt.Errorf("order reference %q matches %d shipments; use the shipment ID", input, len(refMatches))
	}

	// 3. ID prefix match
	var matches []string
	for _, s := range shipments {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("shipment not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("shipment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newShipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipment",
		Aliases: []string{"ship"},
		Short:   "Manage inbound shipments",
	}

	cmd.AddCommand(
		newShipmentAddCmd(app),
		newShipmentListCmd(app),
		newShipmentStatusCmd(app),
		newShipmentRemoveCmd(app),
	)

	return cmd
}

func newShipmentAddCmd(app *App) *cobra.Command {
	var (
		ref, warehouse, status, bins string
		week                         int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an inbound shipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, err := parseBins(bins)
			if err != nil {
				return err
			}

			s := &domain.Shipment{
				OrderRef:             ref,
				DestinationWarehouse: warehouse,
				BinVolume:            volume,
			}
			if cmd.Flags().Changed("week") {
				w := week
				s.ArrivalWeek = &w
			}
			if status != "" {
				parsed, ok := domain.ParseShipmentStatus(status)
				if !ok {
					return fmt.Errorf("unknown shipment status %q", status)
				}
				s.Status = parsed
			}

			ctx := context.Background()
			if err := app.Shipments.Create(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added shipment %s [%s] → %s, %s bins, %s\n",
				s.OrderRef, s.ID[:8], s.DestinationWarehouse,
				formatter.FormatBins(s.BinVolume), formatter.FormatWeekNumber(s.ArrivalWeek))

			if _, err := app.Warehouses.Get(ctx, s.DestinationWarehouse); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(
					fmt.Sprintf("! %s is not a registered warehouse; this shipment will not be forecast", s.DestinationWarehouse)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Order reference")
	cmd.Flags().StringVar(&warehouse, "warehouse", "", "Destination warehouse")
	cmd.Flags().IntVar(&week, "week", 0, "Arrival ISO week number (1-53); omit if unscheduled")
	cmd.Flags().StringVar(&bins, "bins", "", "Bin volume")
	cmd.Flags().StringVar(&status, "status", "", "Lifecycle status (default planned)")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("warehouse")
	_ = cmd.MarkFlagRequired("bins")

	return cmd
}

func newShipmentListCmd(app *App) *cobra.Command {
	var (
		statuses  statusListFlag
		warehouse string
		pending   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipments in arrival order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shipments, err := app.Shipments.List(context.Background(), repository.ShipmentFilter{
				Statuses:    statuses.statuses,
				Warehouse:   warehouse,
				PendingOnly: pending,
			})
			if err != nil {
				return err
			}
			if len(shipments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shipments found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShipmentList(shipments))
			return nil
		},
	}

	cmd.Flags().Var(&statuses, "status", "Only these statuses (comma-separated or repeated)")
	cmd.Flags().StringVar(&warehouse, "warehouse", "", "Only shipments for this warehouse")
	cmd.Flags().BoolVar(&pending, "pending", false, "Only shipments that still add inflow")

	return cmd
}

func newShipmentStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a shipment to a new lifecycle status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := domain.ParseShipmentStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown shipment status %q", args[1])
			}

			ctx := context.Background()
			id, err := resolveShipmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Shipments.UpdateStatus(ctx, id, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", s.OrderRef, formatter.StatusPill(s.Status))
			return nil
		},
	}
}

func newShipmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveShipmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Shipments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed shipment %s\n", id[:8])
			return nil
		},
	}
}
