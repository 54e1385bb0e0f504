package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the side of the ledger an amount is posted to.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// AccountType classifies an account within the chart of accounts. Each type
// carries a fixed normal balance side:
//
//	TYPE      | NORMAL BALANCE
//	---------------------------
//	Asset     | Debit
//	Liability | Credit
//	Equity    | Credit
//	Revenue   | Credit
//	Expense   | Debit
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// AccountTypes lists every concrete account type, in accounting-equation order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// NormalBalance returns the normal balance side for the account type.
func (t AccountType) NormalBalance() Side {
	switch t {
	case Liability, Equity, Revenue:
		return Credit
	default:
		return Debit
	}
}

// Valid reports whether t is one of the five concrete account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// MinAccountCode is the smallest valid account or rollup code.
const MinAccountCode = 100

// Account is a node in the chart of accounts. An account whose code equals its
// rollup code is a rollup account: it carries no amounts of its own and its
// balance is derived from the same-type accounts that point at it through
// their rollup code.
//
// An account may be marked as contra, which swaps its normal balance. For
// example a "Drawing" account can be created as a contra equity account to
// record removals of equity.
type Account struct {
	ID         string
	Type       AccountType
	Code       int64
	RollupCode int64
	Name       string
	Contra     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsRollup reports whether the account is a rollup account.
func (a *Account) IsRollup() bool {
	return a.Code == a.RollupCode
}

// Net combines the account's debit and credit totals into its balance.
//
// A credit-normal account reports credits minus debits and a debit-normal
// account reports debits minus credits; the contra flag swaps the direction.
func (a *Account) Net(debits, credits decimal.Decimal) decimal.Decimal {
	if (a.Type.NormalBalance() == Credit) != a.Contra {
		return credits.Sub(debits)
	}
	return debits.Sub(credits)
}
