package allocator

import (
	"fmt"

	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/model"

	"github.com/shopspring/decimal"
)

const progressBarWidth = 24

// DisplayBalances prints both account balances.
func (a *Allocator) DisplayBalances() {
	fmt.Fprintf(a.out, "Income Account Balance: %s\n", cli.FormatMoney(a.Income()))
	fmt.Fprintf(a.out, "Savings Account Balance: %s\n", cli.FormatMoney(a.Savings()))
}

// DisplayGoals prints the goal list as a table.
func (a *Allocator) DisplayGoals() {
	fmt.Fprint(a.out, RenderGoals(a.goals))
}

// DisplayProgress prints one progress line per goal.
func (a *Allocator) DisplayProgress() {
	for _, p := range a.Progress() {
		ratio, _ := p.Percent.Div(hundred).Float64()
		fmt.Fprintf(a.out, "Progress towards '%s' savings goal: %s %s\n",
			p.Goal.Name, cli.FormatPercent(p.Percent), cli.RenderProgressBar(ratio, progressBarWidth))
	}
}

// RenderGoals renders goals in insertion order. An empty list renders a
// one-line notice instead of an empty table.
func RenderGoals(goals []model.Goal) string {
	if len(goals) == 0 {
		return "No savings goals.\n"
	}

	rows := make([][]string, 0, len(goals)+2)
	totalTarget, totalPct := decimal.Zero, decimal.Zero
	for _, g := range goals {
		rows = append(rows, []string{g.Name, cli.FormatMoney(g.TargetAmount), cli.FormatRate(g.AllocationPct)})
		totalTarget = totalTarget.Add(g.TargetAmount)
		totalPct = totalPct.Add(g.AllocationPct)
	}
	// Percentages are nominal; the sum is not required to be 100.
	rows = append(rows, []string{"---"}, []string{"Total", cli.FormatMoney(totalTarget), cli.FormatRate(totalPct)})
	return cli.RenderTable(cli.Table{
		Title:   "Savings Goals",
		Headers: []string{"Goal", "Target Amount", "Allocation"},
		Rows:    rows,
	})
}
