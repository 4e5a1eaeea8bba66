package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Rewrite the interchange file from the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		count, err := svc.Export(context.Background())
		if err != nil {
			return err
		}

		ws, err := wire.Workspace()
		if err != nil {
			return err
		}

		fmt.Printf("✓ Exported %d item(s) to %s\n", count, ws.InterchangePath())
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the store contents from the interchange file",
	Long:  "Read .work/work.jsonl and replace the relational store wholesale. The sanctioned path for pulling in external edits, e.g. after a version-control merge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire.ItemService()
		if err != nil {
			return err
		}

		count, ok, err := svc.Import(context.Background())
		if err != nil {
			return err
		}

		if !ok {
			fmt.Println("Nothing to import.")
			return nil
		}

		fmt.Printf("✓ Imported %d item(s)\n", count)
		return nil
	},
}

// ExportCmd returns the export command.
func ExportCmd() *cobra.Command {
	return exportCmd
}

// ImportCmd returns the import command.
func ImportCmd() *cobra.Command {
	return importCmd
}
