package cmd

import (
	"fmt"

	"github.com/theirongolddev/savealloc/internal/allocator"
	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List saved goals without allocating",
	Args:  cobra.NoArgs,
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

// runGoals only reads the data file; it never saves.
func runGoals(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger(flagVerbose)
	defer func() { _ = logger.Sync() }()

	st := store.NewFile(cfg.General.DataFile, logger)
	goals, err := st.Load()
	if err != nil {
		logger.Error("loading user data", zap.String("path", st.Path()), zap.Error(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("SAVINGS GOALS"))
	fmt.Fprintf(out, "  Data file: %s\n\n", st.Path())
	fmt.Fprint(out, allocator.RenderGoals(goals))
	return nil
}
