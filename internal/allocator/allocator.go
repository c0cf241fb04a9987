// Package allocator moves income into savings according to per-goal
// allocation percentages and reports progress toward each goal.
package allocator

import (
	"fmt"
	"io"

	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// GoalStore persists the goal list.
type GoalStore interface {
	Load() ([]model.Goal, error)
	Save(goals []model.Goal) error
	Path() string
}

// Allocator owns the Income and Savings accounts and the ordered goal list.
type Allocator struct {
	income  *Account
	savings *Account
	goals   []model.Goal

	store GoalStore
	out   io.Writer
	log   *zap.Logger
}

// Progress is one goal's standing against the pooled savings balance.
type Progress struct {
	Goal    model.Goal
	Percent decimal.Decimal // 0-100 scale, may exceed 100
}

// New deposits initialIncome into a fresh Income account and loads any
// persisted goals. Load failures are logged and whatever was read is kept.
func New(initialIncome decimal.Decimal, store GoalStore, out io.Writer, log *zap.Logger) *Allocator {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}

	a := &Allocator{
		income:  NewAccount("Income", out),
		savings: NewAccount("Savings", out),
		store:   store,
		out:     out,
		log:     log,
	}
	a.income.Deposit(initialIncome)
	a.load()
	return a
}

func (a *Allocator) load() {
	goals, err := a.store.Load()
	a.goals = append(a.goals, goals...)
	if err != nil {
		a.log.Error("loading user data", zap.String("path", a.store.Path()), zap.Error(err))
		return
	}
	a.log.Debug("loaded goals", zap.String("path", a.store.Path()), zap.Int("count", len(goals)))
}

func (a *Allocator) save() {
	if err := a.store.Save(a.goals); err != nil {
		a.log.Error("saving user data", zap.String("path", a.store.Path()), zap.Error(err))
	}
}

// AddGoal appends a goal and persists the full list.
func (a *Allocator) AddGoal(name string, target, pct decimal.Decimal) {
	a.goals = append(a.goals, model.NewGoal(name, target, pct))
	fmt.Fprintf(a.out, "Added savings goal '%s' with a target amount of %s and allocation percentage of %s.\n",
		name, cli.FormatMoney(target), cli.FormatRate(pct))
	a.save()
}

// Allocate moves each goal's percentage of the current income balance into
// savings, in goal order. Each goal takes its share of what earlier goals
// left behind, not of the original income.
func (a *Allocator) Allocate() {
	for _, g := range a.goals {
		amount := a.income.Balance().Mul(g.AllocationPct).Div(hundred)
		a.logTx(g, a.savings.Deposit(amount))
		if tx, ok := a.income.Withdraw(amount); ok {
			a.logTx(g, tx)
		}

		fmt.Fprintf(a.out, "Allocated %s of income to '%s' savings goal.\n", cli.FormatRate(g.AllocationPct), g.Name)
	}
	a.save()
}

func (a *Allocator) logTx(g model.Goal, tx model.Transaction) {
	a.log.Debug("transaction",
		zap.String("goal", g.Name),
		zap.String("account", tx.Account),
		zap.String("kind", string(tx.Kind)),
		zap.String("amount", tx.Amount.String()),
		zap.String("balance", tx.Balance.String()),
	)
}

// Income returns the income balance.
func (a *Allocator) Income() decimal.Decimal { return a.income.Balance() }

// Savings returns the pooled savings balance.
func (a *Allocator) Savings() decimal.Decimal { return a.savings.Balance() }

// Goals returns a copy of the goal list in insertion order.
func (a *Allocator) Goals() []model.Goal {
	out := make([]model.Goal, len(a.goals))
	copy(out, a.goals)
	return out
}

// Progress measures the whole savings balance against each goal's target.
// All goals share the same pool; a zero target reports zero.
func (a *Allocator) Progress() []Progress {
	rows := make([]Progress, 0, len(a.goals))
	for _, g := range a.goals {
		pct := decimal.Zero
		if !g.TargetAmount.IsZero() {
			pct = a.savings.Balance().Div(g.TargetAmount).Mul(hundred)
		}
		rows = append(rows, Progress{Goal: g, Percent: pct})
	}
	return rows
}
