package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/ports/primary"
	"github.com/example/wrk/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List work items",
	Long:  "List items ordered by priority then ID. Closed items are excluded unless --status is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		status, _ := cmd.Flags().GetString("status")
		itemType, _ := cmd.Flags().GetString("type")
		author, _ := cmd.Flags().GetString("author")
		assignee, _ := cmd.Flags().GetString("assignee")
		label, _ := cmd.Flags().GetString("label")

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		items, err := svc.ListItems(ctx, primary.ItemFilters{
			Status:   status,
			Type:     itemType,
			Author:   author,
			Assignee: assignee,
			Label:    label,
		})
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No items found.")
			return nil
		}

		for _, it := range items {
			fmt.Println(itemLine(it))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show work item details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		it, err := svc.GetItem(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Item: %s\n", it.ID)
		fmt.Printf("Title: %s\n", it.Title)
		fmt.Printf("Status: %s\n", statusLabel(it.Status))
		fmt.Printf("Type: %s\n", it.Type)
		fmt.Printf("Priority: %d\n", it.Priority)
		if it.Description != "" {
			fmt.Printf("Description: %s\n", it.Description)
		}
		if len(it.BlockedBy) > 0 {
			fmt.Printf("Blocked by: %s\n", strings.Join(it.BlockedBy, ", "))
		}
		if len(it.Labels) > 0 {
			fmt.Printf("Labels: %s\n", strings.Join(it.Labels, ", "))
		}
		if it.Author != "" {
			fmt.Printf("Author: %s\n", it.Author)
		}
		if it.Assignee != "" {
			fmt.Printf("Assignee: %s\n", it.Assignee)
		}
		if it.ClosedReason != "" {
			fmt.Printf("Closed reason: %s\n", it.ClosedReason)
		}
		fmt.Printf("Created: %s\n", it.Created.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated: %s\n", it.Updated.Format("2006-01-02 15:04:05"))
		if len(it.Log) > 0 {
			fmt.Println("Log:")
			for _, entry := range it.Log {
				who := ""
				if entry.Agent != "" {
					who = " " + entry.Agent
				}
				fmt.Printf("  [%s%s] %s\n", entry.Time.Format("2006-01-02 15:04:05"), who, entry.Text)
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status (open, in_progress, closed)")
	listCmd.Flags().String("type", "", "Filter by type")
	listCmd.Flags().String("author", "", "Filter by author")
	listCmd.Flags().String("assignee", "", "Filter by assignee")
	listCmd.Flags().String("label", "", "Filter by label")
}

// ListCmd returns the list command.
func ListCmd() *cobra.Command {
	return listCmd
}

// ShowCmd returns the show command.
func ShowCmd() *cobra.Command {
	return showCmd
}
