// Package cmd implements the savealloc CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/savealloc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data file:    %s\n", cfg.General.DataFile)
	fmt.Fprintf(out, "    Prompt style: %s\n", cfg.General.PromptStyle)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency: %s\n", cfg.Display.Currency)
	fmt.Fprintf(out, "    Theme:    %s\n", cfg.Display.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `savealloc setup` to reconfigure.")
	return nil
}
