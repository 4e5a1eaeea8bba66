package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/wire"
)

var blockCmd = &cobra.Command{
	Use:   "block [id] [blocker-id]",
	Short: "Mark an item as blocked by another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		added, err := svc.Block(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}

		if !added {
			fmt.Printf("Item %s is already blocked by %s\n", args[0], args[1])
			return nil
		}

		fmt.Printf("✓ Item %s blocked by %s\n", args[0], args[1])
		return nil
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock [id] [blocker-id]",
	Short: "Remove a blocking dependency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		removed, err := svc.Unblock(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}

		if !removed {
			fmt.Printf("Item %s was not blocked by %s\n", args[0], args[1])
			return nil
		}

		fmt.Printf("✓ Item %s unblocked from %s\n", args[0], args[1])
		return nil
	},
}

var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "List actionable items (no open blockers, not closed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		items, err := svc.ReadyItems(context.Background())
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("No ready items.")
			return nil
		}

		for _, it := range items {
			fmt.Println(itemLine(it))
		}
		return nil
	},
}

var blockedCmd = &cobra.Command{
	Use:   "blocked",
	Short: "List blocked items with their open blockers",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		blocked, err := svc.BlockedItems(context.Background())
		if err != nil {
			return err
		}

		if len(blocked) == 0 {
			fmt.Println("No blocked items.")
			return nil
		}

		for _, b := range blocked {
			fmt.Printf("%s  blocked by: %s\n", itemLine(b.Item), strings.Join(b.OpenBlockers, ", "))
		}
		return nil
	},
}

// BlockCmd returns the block command.
func BlockCmd() *cobra.Command {
	return blockCmd
}

// UnblockCmd returns the unblock command.
func UnblockCmd() *cobra.Command {
	return unblockCmd
}

// ReadyCmd returns the ready command.
func ReadyCmd() *cobra.Command {
	return readyCmd
}

// BlockedCmd returns the blocked command.
func BlockedCmd() *cobra.Command {
	return blockedCmd
}
