package prompt

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DoneKeyword ends goal entry.
const DoneKeyword = "done"

var hundred = decimal.NewFromInt(100)

//nolint:staticcheck // messages are printed to the user as-is
var (
	errBadIncome = errors.New("Invalid input. Please enter a valid positive number for initial income.")
	errBadTarget = errors.New("Invalid input. Please enter a valid positive number for target amount.")
	errBadPct    = errors.New("Invalid input. Please enter a valid positive number between 0 and 100 for allocation percentage.")
)

func isPositive(d decimal.Decimal) bool { return d.IsPositive() }

func isPercentage(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThanOrEqual(hundred)
}

// DecimalRule validates an answer as a plain decimal accepted by ok,
// reporting invalid with msg. Exponent notation such as "1e2" is rejected.
func DecimalRule(ok func(decimal.Decimal) bool, msg error) func(string) error {
	return func(s string) error {
		if strings.ContainsAny(s, "eE") {
			return msg
		}
		d, err := decimal.NewFromString(s)
		if err != nil || !ok(d) {
			return msg
		}
		return nil
	}
}

func askDecimal(a Asker, text string, ok func(decimal.Decimal) bool, msg error) (decimal.Decimal, error) {
	answer, err := a.Ask(Question{Prompt: text, Validate: DecimalRule(ok, msg)})
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(answer)
}

// Income asks for the initial income, a positive amount.
func Income(a Asker) (decimal.Decimal, error) {
	return askDecimal(a, "Enter your initial income: ", isPositive, errBadIncome)
}

// TargetAmount asks for a goal's positive target amount.
func TargetAmount(a Asker) (decimal.Decimal, error) {
	return askDecimal(a, "Enter target amount: ", isPositive, errBadTarget)
}

// AllocationPct asks for a percentage in (0, 100].
func AllocationPct(a Asker) (decimal.Decimal, error) {
	return askDecimal(a, "Enter allocation percentage: ", isPercentage, errBadPct)
}

// GoalName asks for the next goal name. done is true when the user typed
// the done keyword in any case.
func GoalName(a Asker) (name string, done bool, err error) {
	name, err = a.Ask(Question{Prompt: "Enter goal name (or type 'done' to finish adding goals): "})
	if err != nil {
		return "", false, err
	}
	if strings.EqualFold(name, DoneKeyword) {
		return "", true, nil
	}
	return name, false, nil
}
