package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/ports/primary"
	"github.com/example/wrk/internal/wire"
)

// resolveAssignee returns the explicit assignee when given, otherwise the
// resolved identity's author name.
func resolveAssignee(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	identity, err := wire.Identity()
	if err != nil {
		return "", err
	}
	if identity.Author == "" {
		return "", fmt.Errorf("no assignee given and none configured (set WRK_AUTHOR or 'wrk config set author')")
	}
	return identity.Author, nil
}

var claimCmd = &cobra.Command{
	Use:   "claim [id] [assignee]",
	Short: "Claim an item for an assignee",
	Long:  "Claim an item. Without an explicit assignee the resolved identity is used.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := ""
		if len(args) == 2 {
			explicit = args[1]
		}
		assignee, err := resolveAssignee(explicit)
		if err != nil {
			return err
		}

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.Claim(context.Background(), args[0], assignee); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s claimed by %s\n", args[0], assignee)
		return nil
	},
}

var unclaimCmd = &cobra.Command{
	Use:   "unclaim [id]",
	Short: "Clear an item's assignee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.Unclaim(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s unclaimed\n", args[0])
		return nil
	},
}

var mineCmd = &cobra.Command{
	Use:   "mine [assignee]",
	Short: "List items claimed by an assignee",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := ""
		if len(args) == 1 {
			explicit = args[0]
		}
		assignee, err := resolveAssignee(explicit)
		if err != nil {
			return err
		}

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		items, err := svc.ListItems(context.Background(), primary.ItemFilters{Assignee: assignee})
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Printf("No items claimed by %s.\n", assignee)
			return nil
		}

		for _, it := range items {
			fmt.Println(itemLine(it))
		}
		return nil
	},
}

// ClaimCmd returns the claim command.
func ClaimCmd() *cobra.Command {
	return claimCmd
}

// UnclaimCmd returns the unclaim command.
func UnclaimCmd() *cobra.Command {
	return unclaimCmd
}

// MineCmd returns the mine command.
func MineCmd() *cobra.Command {
	return mineCmd
}
