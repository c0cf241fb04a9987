package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/savealloc/internal/config"
	"github.com/theirongolddev/savealloc/internal/prompt"
	"github.com/theirongolddev/savealloc/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure data file, currency and appearance",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file only so env overrides are not persisted.
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	themeNames := make([]string, 0, len(theme.All))
	for _, t := range theme.All {
		themeNames = append(themeNames, t.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal data file").
				Description("Comma-delimited goal list, relative to the working directory.").
				Value(&cfg.General.DataFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("data file cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.Display.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&cfg.Display.Theme),
			huh.NewSelect[string]().
				Title("Prompt style").
				Options(huh.NewOptions(prompt.StyleAuto, prompt.StylePlain, prompt.StyleForm)...).
				Value(&cfg.General.PromptStyle),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg.General.DataFile = strings.TrimSpace(cfg.General.DataFile)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `savealloc setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
