// Package model defines domain types for savealloc accounts and goals.
package model

import "github.com/shopspring/decimal"

// Goal is a savings target with the share of income allocated toward it.
// Goals are immutable once created.
type Goal struct {
	Name          string
	TargetAmount  decimal.Decimal
	AllocationPct decimal.Decimal
}

// NewGoal builds a Goal. Validation of target and percentage is left to callers.
func NewGoal(name string, target, pct decimal.Decimal) Goal {
	return Goal{Name: name, TargetAmount: target, AllocationPct: pct}
}
