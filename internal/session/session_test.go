package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/savealloc/internal/prompt"
	"github.com/theirongolddev/savealloc/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dataPath, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	alloc, err := Run(Options{
		Asker: prompt.NewLineAsker(strings.NewReader(input), &out),
		Out:   &out,
		Store: store.NewFile(dataPath, nil),
	})
	if alloc != nil && err == nil {
		t.Logf("income=%s savings=%s", alloc.Income(), alloc.Savings())
	}
	return out.String(), err
}

func TestRun_FullSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.txt")
	input := strings.Join([]string{
		"oops", "200",
		"G1", "100", "50",
		"G2", "-1", "100", "150", "50",
		"done",
	}, "\n") + "\n"

	out, err := run(t, path, input)
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to Automatic Savings Allocator!")
	assert.Contains(t, out, "Invalid input. Please enter a valid positive number for initial income.")
	assert.Contains(t, out, "Invalid input. Please enter a valid positive number for target amount.")
	assert.Contains(t, out, "Invalid input. Please enter a valid positive number between 0 and 100 for allocation percentage.")
	assert.Contains(t, out, "Income Account Balance: $200.00")
	assert.Contains(t, out, "Income Account Balance: $50.00")
	assert.Contains(t, out, "Savings Account Balance: $150.00")
	assert.Contains(t, out, "Progress towards 'G1' savings goal: 150.00%")

	initial := strings.Index(out, "Initial Account Balances:")
	updated := strings.Index(out, "Updated Account Balances:")
	require.True(t, initial >= 0 && updated > initial, "sections out of order:\n%s", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "G1,100,50\nG2,100,50\n", string(data))
}

func TestRun_LoadsGoalsFromPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.txt")
	require.NoError(t, os.WriteFile(path, []byte("Saved,400,25\n"), 0o600))

	var out bytes.Buffer
	alloc, err := Run(Options{
		Asker: prompt.NewLineAsker(strings.NewReader("400\ndone\n"), &out),
		Out:   &out,
		Store: store.NewFile(path, nil),
	})
	require.NoError(t, err)

	assert.True(t, alloc.Savings().Equal(decimal.NewFromInt(100)))
	assert.Contains(t, out.String(), "Progress towards 'Saved' savings goal: 25.00%")
}

func TestRun_EOFDuringGoalEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.txt")

	_, err := run(t, path, "100\nHouse\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}
