package model

import "github.com/shopspring/decimal"

// TxKind distinguishes deposits from withdrawals.
type TxKind string

const (
	TxDeposit    TxKind = "deposit"
	TxWithdrawal TxKind = "withdrawal"
)

// Transaction records one account operation and the balance it left behind.
type Transaction struct {
	Account string
	Kind    TxKind
	Amount  decimal.Decimal
	Balance decimal.Decimal
}
