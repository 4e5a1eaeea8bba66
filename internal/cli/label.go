package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/wire"
)

var labelCmd = &cobra.Command{
	Use:   "label [id] [label]",
	Short: "Add a label to an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		if err := svc.AddLabel(context.Background(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("✓ Item %s labeled %q\n", args[0], args[1])
		return nil
	},
}

var unlabelCmd = &cobra.Command{
	Use:   "unlabel [id] [label]",
	Short: "Remove a label from an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		removed, err := svc.RemoveLabel(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}

		if !removed {
			fmt.Printf("Item %s does not have label %q\n", args[0], args[1])
			return nil
		}

		fmt.Printf("✓ Label %q removed from item %s\n", args[1], args[0])
		return nil
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List all distinct labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		labels, err := svc.Labels(context.Background())
		if err != nil {
			return err
		}

		if len(labels) == 0 {
			fmt.Println("No labels.")
			return nil
		}

		for _, l := range labels {
			fmt.Println(l)
		}
		return nil
	},
}

// LabelCmd returns the label command.
func LabelCmd() *cobra.Command {
	return labelCmd
}

// UnlabelCmd returns the unlabel command.
func UnlabelCmd() *cobra.Command {
	return unlabelCmd
}

// LabelsCmd returns the labels command.
func LabelsCmd() *cobra.Command {
	return labelsCmd
}
