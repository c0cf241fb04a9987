package allocator

import (
	"fmt"
	"io"

	"github.com/theirongolddev/savealloc/internal/cli"
	"github.com/theirongolddev/savealloc/internal/model"

	"github.com/shopspring/decimal"
)

// Account is a named balance that reports each operation to out.
type Account struct {
	name    string
	balance decimal.Decimal
	out     io.Writer
}

// NewAccount returns an empty account.
func NewAccount(name string, out io.Writer) *Account {
	if out == nil {
		out = io.Discard
	}
	return &Account{name: name, balance: decimal.Zero, out: out}
}

// Name returns the account name.
func (a *Account) Name() string { return a.name }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit adds amount to the balance unconditionally.
func (a *Account) Deposit(amount decimal.Decimal) model.Transaction {
	a.balance = a.balance.Add(amount)
	fmt.Fprintf(a.out, "Deposited %s into %s account.\n", cli.FormatMoney(amount), a.name)
	return model.Transaction{Account: a.name, Kind: model.TxDeposit, Amount: amount, Balance: a.balance}
}

// Withdraw removes amount if the balance covers it. Otherwise it prints an
// insufficient-funds notice, leaves the balance untouched and returns false.
func (a *Account) Withdraw(amount decimal.Decimal) (model.Transaction, bool) {
	if amount.GreaterThan(a.balance) {
		fmt.Fprintf(a.out, "Insufficient funds in %s account.\n", a.name)
		return model.Transaction{}, false
	}

	a.balance = a.balance.Sub(amount)
	fmt.Fprintf(a.out, "Withdrawn %s from %s account.\n", cli.FormatMoney(amount), a.name)
	return model.Transaction{Account: a.name, Kind: model.TxWithdrawal, Amount: amount, Balance: a.balance}, true
}
