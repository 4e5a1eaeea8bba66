package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wrk/internal/config"
	"github.com/example/wrk/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show workspace configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := wire.Config()
		if err != nil {
			return err
		}
		identity, err := wire.Identity()
		if err != nil {
			return err
		}

		fmt.Printf("author:   %s\n", cfg.Author)
		fmt.Printf("agent:    %s\n", cfg.Agent)
		fmt.Printf("resolved: author=%s agent=%s\n", identity.Author, identity.Agent)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [field] [value]",
	Short: "Set a configuration field (author, agent)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := wire.Workspace()
		if err != nil {
			return err
		}
		cfg, err := wire.Config()
		if err != nil {
			return err
		}

		switch args[0] {
		case "author":
			cfg.Author = args[1]
		case "agent":
			cfg.Agent = args[1]
		default:
			return fmt.Errorf("unknown config field %q (author, agent)", args[0])
		}

		if err := config.Save(ws.Root, cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Set %s to %s\n", args[0], args[1])
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [field]",
	Short: "Clear a configuration field (author, agent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := wire.Workspace()
		if err != nil {
			return err
		}
		cfg, err := wire.Config()
		if err != nil {
			return err
		}

		switch args[0] {
		case "author":
			cfg.Author = ""
		case "agent":
			cfg.Agent = ""
		default:
			return fmt.Errorf("unknown config field %q (author, agent)", args[0])
		}

		if err := config.Save(ws.Root, cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Cleared %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}

// ConfigCmd returns the config command.
func ConfigCmd() *cobra.Command {
	return configCmd
}
