package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/models"
	"github.com/example/wrk/internal/ports/primary"
	"github.com/example/wrk/internal/wire"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new work item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetInt("priority")
		description, _ := cmd.Flags().GetString("description")
		author, _ := cmd.Flags().GetString("author")
		assignee, _ := cmd.Flags().GetString("assignee")

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}
		identity, err := wire.Identity()
		if err != nil {
			return err
		}

		it, err := svc.AddItem(actorContext(identity.Author), primary.AddItemRequest{
			Title:       args[0],
			Type:        itemType,
			Priority:    priority,
			Description: description,
			Author:      author,
			Assignee:    assignee,
		})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		fmt.Printf("✓ Created item %s: %s\n", it.ID, it.Title)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("type", "t", models.TypeTask, "Item type (task, bug, feature)")
	addCmd.Flags().IntP("priority", "p", models.DefaultPriority, "Priority 0-4 (0=critical, 4=backlog)")
	addCmd.Flags().StringP("description", "d", "", "Item description")
	addCmd.Flags().String("author", "", "Originating author")
	addCmd.Flags().String("assignee", "", "Initial assignee")
}

// AddCmd returns the add command.
func AddCmd() *cobra.Command {
	return addCmd
}
