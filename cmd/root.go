package cmd

import (
	"os"

	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/config"
	"github.com/theirongolddev/savealloc/internal/prompt"
	"github.com/theirongolddev/savealloc/internal/session"
	"github.com/theirongolddev/savealloc/internal/store"
	"github.com/theirongolddev/savealloc/internal/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagPlain    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "savealloc",
	Short:        "Automatic Savings Allocator",
	Long:         "Split your income across savings goals and track progress toward each one.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runAllocate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	// A .env file is optional.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Goal data file (default from config, userdata.txt)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Use line-based prompts even on a terminal")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadSettings is the shared config path used by all commands. Flags win
// over the environment, which wins over the config file.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	if flagDataFile != "" {
		cfg.General.DataFile = flagDataFile
	}
	if flagPlain {
		cfg.General.PromptStyle = prompt.StylePlain
	}

	theme.SetActive(cfg.Display.Theme)
	cli.SetCurrency(cfg.Display.Currency)
	return cfg, nil
}

func runAllocate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger(flagVerbose)
	defer func() { _ = logger.Sync() }()

	_, err = session.Run(session.Options{
		Asker:  prompt.New(cfg.General.PromptStyle, os.Stdin, os.Stdout),
		Out:    os.Stdout,
		Store:  store.NewFile(cfg.General.DataFile, logger),
		Logger: logger,
	})
	return err
}
