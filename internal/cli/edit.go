package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/wire"
)

var editCmd = &cobra.Command{
	Use:   "edit [id] [field] [value]",
	Short: "Edit a single item field",
	Long:  "Set one of: title, priority, type, description, author, assignee.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.EditItem(context.Background(), args[0], args[1], args[2]); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s updated (%s)\n", args[0], args[1])
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log [id] [message]",
	Short: "Append a log entry to an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, _ := cmd.Flags().GetString("agent")

		svc, err := wire.ItemService()
		if err != nil {
			return err
		}
		identity, err := wire.Identity()
		if err != nil {
			return err
		}

		if err := svc.AppendLog(actorContext(identity.Agent), args[0], agent, args[1]); err != nil {
			return err
		}

		fmt.Printf("✓ Logged on item %s\n", args[0])
		return nil
	},
}

func init() {
	logCmd.Flags().String("agent", "", "Agent name to attribute the entry to")
}

// EditCmd returns the edit command.
func EditCmd() *cobra.Command {
	return editCmd
}

// LogCmd returns the log command.
func LogCmd() *cobra.Command {
	return logCmd
}
