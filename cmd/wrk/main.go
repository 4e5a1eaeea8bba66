package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/cli"
	"github.com/example/wrk/internal/version"
	"github.com/example/wrk/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wrk",
		Short:   "wrk - project-local work-item tracker",
		Version: version.String(),
		Long: `wrk tracks small work items in a project checkout: a SQLite store under
.work/ is the source of truth, mirrored to a line-per-record work.jsonl
file that is friendly to version control.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.StartCmd())
	rootCmd.AddCommand(cli.CloseCmd())
	rootCmd.AddCommand(cli.ReopenCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.BlockCmd())
	rootCmd.AddCommand(cli.UnblockCmd())
	rootCmd.AddCommand(cli.ReadyCmd())
	rootCmd.AddCommand(cli.BlockedCmd())
	rootCmd.AddCommand(cli.LabelCmd())
	rootCmd.AddCommand(cli.UnlabelCmd())
	rootCmd.AddCommand(cli.LabelsCmd())
	rootCmd.AddCommand(cli.ClaimCmd())
	rootCmd.AddCommand(cli.UnclaimCmd())
	rootCmd.AddCommand(cli.MineCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
