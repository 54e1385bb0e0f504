package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a single debit or credit posted to an account by an entry. Amounts
// are created with their parent entry and are immutable; they are removed only
// when the entry is removed.
type Amount struct {
	ID        string
	EntryID   string
	AccountID string
	Side      Side
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Entry is a balanced transaction: an ordered set of amounts whose debit total
// equals its credit total. Entries are recorded atomically with all their
// amounts or not at all.
type Entry struct {
	ID          string
	Description string
	Date        time.Time
	Amounts     []Amount
	CreatedAt   time.Time
}

// DebitTotal sums the entry's debit amounts.
func (e *Entry) DebitTotal() decimal.Decimal {
	return e.sideTotal(Debit)
}

// CreditTotal sums the entry's credit amounts.
func (e *Entry) CreditTotal() decimal.Decimal {
	return e.sideTotal(Credit)
}

func (e *Entry) sideTotal(side Side) decimal.Decimal {
	total := decimal.Zero
	for _, a := range e.Amounts {
		if a.Side == side {
			total = total.Add(a.Amount)
		}
	}
	return total
}
