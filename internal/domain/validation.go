package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAccount checks an account definition against the chart-of-accounts
// rules: a concrete type, a non-empty name and codes of at least
// MinAccountCode with code >= rollup code.
func ValidateAccount(a *Account) error {
	if !a.Type.Valid() {
		return ErrBadAccountType
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrMissingName
	}
	if a.Code < MinAccountCode {
		return ErrCodeTooSmall
	}
	if a.RollupCode < MinAccountCode {
		return ErrRollupCodeTooSmall
	}
	if a.Code < a.RollupCode {
		return ErrCodeBelowRollup
	}
	return nil
}

// ValidateEntry checks that an entry is well formed: every amount strictly
// positive and on a known side, at least one amount on each side, and debits
// equal to credits.
func ValidateEntry(e *Entry) error {
	debits, credits := 0, 0
	for _, a := range e.Amounts {
		if a.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrNonPositiveAmount
		}
		switch a.Side {
		case Debit:
			debits++
		case Credit:
			credits++
		default:
			return ErrInvalidSide
		}
	}
	if debits == 0 || credits == 0 {
		return ErrIncompleteEntry
	}
	if !e.DebitTotal().Equal(e.CreditTotal()) {
		return ErrUnbalancedEntry
	}
	return nil
}
