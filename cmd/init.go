package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/repmax/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with the default settings",
	// Runs before any config exists, so skip loading it.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
			path = p
		}

		if err := config.WriteDefault(path, initForce); err != nil {
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Config initialized at %s\n", path)
		return nil
	},
}

func init() {
	initSetupCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initSetupCmd)
}
