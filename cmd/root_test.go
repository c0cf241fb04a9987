package cmd

import (
	"testing"

	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/config"
	"github.com/theirongolddev/savealloc/internal/prompt"
	"github.com/theirongolddev/savealloc/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagDataFile, flagPlain, flagVerbose = "", false, false
		theme.SetActive(theme.FlexokiDark.Name)
		cli.SetCurrency("$")
	})
}

func TestLoadSettings_FlagsWinOverEnvAndFile(t *testing.T) {
	resetFlags(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	cfg.General.DataFile = "file.txt"
	cfg.Display.Currency = "€"
	cfg.Display.Theme = "terminal"
	require.NoError(t, config.Save(cfg))
	t.Setenv("SAVEALLOC_DATA_FILE", "env.txt")

	got, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "env.txt", got.General.DataFile)
	assert.Equal(t, "terminal", theme.Active.Name)
	assert.Equal(t, "€", cli.Currency())

	flagDataFile = "flag.txt"
	flagPlain = true
	got, err = loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", got.General.DataFile)
	assert.Equal(t, prompt.StylePlain, got.General.PromptStyle)
}

func TestNewLogger_Levels(t *testing.T) {
	assert.False(t, newLogger(false).Core().Enabled(zapcore.DebugLevel), "debug off by default")
	assert.True(t, newLogger(true).Core().Enabled(zapcore.DebugLevel), "debug on when verbose")
}
