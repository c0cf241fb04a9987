// Package session runs one interactive allocation: ask for income and
// goals, show the starting state, allocate once, show the result.
package session

import (
	"fmt"
	"io"

	"github.com/theirongolddev/savealloc/internal/allocator"
	"github.com/theirongolddev/savealloc/internal/prompt"

	"go.uber.org/zap"
)

// Options wires a session to its input, output and goal store.
type Options struct {
	Asker  prompt.Asker
	Out    io.Writer
	Store  allocator.GoalStore
	Logger *zap.Logger
}

// Run executes the session and returns the allocator in its final state.
// It fails only when the asker can no longer produce answers.
func Run(opts Options) (*allocator.Allocator, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fmt.Fprintln(out, "Welcome to Automatic Savings Allocator!")

	income, err := prompt.Income(opts.Asker)
	if err != nil {
		return nil, fmt.Errorf("reading initial income: %w", err)
	}

	alloc := allocator.New(income, opts.Store, out, log)

	fmt.Fprintln(out, "Add your savings goals:")
	if err := addGoals(opts.Asker, alloc); err != nil {
		return alloc, err
	}

	fmt.Fprintln(out, "Initial Account Balances:")
	alloc.DisplayBalances()
	alloc.DisplayGoals()

	alloc.Allocate()

	fmt.Fprintln(out, "\nUpdated Account Balances:")
	alloc.DisplayBalances()
	alloc.DisplayProgress()

	log.Debug("session complete",
		zap.String("income", alloc.Income().String()),
		zap.String("savings", alloc.Savings().String()),
		zap.Int("goals", len(alloc.Goals())),
	)
	return alloc, nil
}

func addGoals(a prompt.Asker, alloc *allocator.Allocator) error {
	for {
		name, done, err := prompt.GoalName(a)
		if err != nil {
			return fmt.Errorf("reading goal name: %w", err)
		}
		if done {
			return nil
		}

		target, err := prompt.TargetAmount(a)
		if err != nil {
			return fmt.Errorf("reading target amount: %w", err)
		}
		pct, err := prompt.AllocationPct(a)
		if err != nil {
			return fmt.Errorf("reading allocation percentage: %w", err)
		}

		alloc.AddGoal(name, target, pct)
	}
}
