package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/adapters/jsonl"
	"github.com/example/wrk/internal/db"
	"github.com/example/wrk/internal/workspace"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a .work workspace in the current directory",
		Long:  "Create .work/ with an empty relational store (work.db) and an empty interchange file (work.jsonl).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			ws, existed, err := workspace.Init(cwd)
			if err != nil {
				return err
			}

			if existed {
				fmt.Printf("Workspace already initialized at %s\n", ws.Dir())
				return nil
			}

			database, err := db.Open(ws.DBPath())
			if err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}
			defer database.Close()

			if err := jsonl.NewStore(ws.InterchangePath()).WriteAll(nil); err != nil {
				return err
			}

			fmt.Printf("✓ Initialized workspace at %s\n", ws.Dir())
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  wrk add \"My first item\"")
			fmt.Println("  wrk ready")

			return nil
		},
	}
}
