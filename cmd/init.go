package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotoclone/rotoclone-zone/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a site configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
			}
		}

		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		// Scaffold the content directory so `serve` works immediately.
		if err := os.MkdirAll(cfg.ContentDir+"/blog", 0o755); err != nil {
			return fmt.Errorf("creating content directory: %w", err)
		}

		fmt.Println("Put markdown entries in", cfg.ContentDir+"/blog", "and run `rotoclone-zone serve`.")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
