package allocator

import (
	"bytes"
	"testing"

	"github.com/theirongolddev/savealloc/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeposit(t *testing.T) {
	var out bytes.Buffer
	acct := NewAccount("Savings", &out)
	acct.Deposit(dec("10.25"))

	tx := acct.Deposit(dec("4.75"))

	assertDec(t, "15", acct.Balance())
	assert.Equal(t, model.TxDeposit, tx.Kind)
	assertDec(t, "15", tx.Balance)
	assert.Contains(t, out.String(), "Deposited $4.75 into Savings account.\n")
}

func TestWithdraw(t *testing.T) {
	var out bytes.Buffer
	acct := NewAccount("Income", &out)
	acct.Deposit(dec("100"))

	tx, ok := acct.Withdraw(dec("100"))

	assert.True(t, ok)
	assertDec(t, "0", acct.Balance())
	assert.Equal(t, model.TxWithdrawal, tx.Kind)
	assert.Contains(t, out.String(), "Withdrawn $100.00 from Income account.\n")
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	var out bytes.Buffer
	acct := NewAccount("Income", &out)
	acct.Deposit(dec("20"))
	out.Reset()

	_, ok := acct.Withdraw(dec("20.01"))

	assert.False(t, ok)
	assertDec(t, "20", acct.Balance())
	assert.Equal(t, "Insufficient funds in Income account.\n", out.String())
}

func TestNewAccount_NilWriter(t *testing.T) {
	acct := NewAccount("Quiet", nil)
	acct.Deposit(dec("1"))
	assert.Equal(t, "Quiet", acct.Name())
	assertDec(t, "1", acct.Balance())
}
