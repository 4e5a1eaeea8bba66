package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/wire"
)

var startCmd = &cobra.Command{
	Use:   "start [id]",
	Short: "Mark an item in_progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.StartItem(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s started\n", args[0])
		return nil
	},
}

var closeCmd = &cobra.Command{
	Use:   "close [id]",
	Short: "Close an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.CloseItem(context.Background(), args[0], reason); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s closed\n", args[0])
		return nil
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen [id]",
	Short: "Reopen a closed item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.ReopenItem(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s reopened\n", args[0])
		return nil
	},
}

func init() {
	closeCmd.Flags().StringP("reason", "r", "", "Reason for closing")
}

// StartCmd returns the start command.
func StartCmd() *cobra.Command {
	return startCmd
}

// CloseCmd returns the close command.
func CloseCmd() *cobra.Command {
	return closeCmd
}

// ReopenCmd returns the reopen command.
func ReopenCmd() *cobra.Command {
	return reopenCmd
}
