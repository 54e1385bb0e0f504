package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAccount(t *testing.T) {
	valid := Account{
		Type:       Asset,
		Code:       1101,
		RollupCode: 1100,
		Name:       "Cash",
	}

	tests := []struct {
		name    string
		mutate  func(*Account)
		wantErr error
	}{
		{
			name:    "valid account",
			mutate:  func(a *Account) {},
			wantErr: nil,
		},
		{
			name:    "valid rollup account",
			mutate:  func(a *Account) { a.Code = 1100 },
			wantErr: nil,
		},
		{
			name:    "unknown type",
			mutate:  func(a *Account) { a.Type = "bank" },
			wantErr: ErrBadAccountType,
		},
		{
			name:    "blank name",
			mutate:  func(a *Account) { a.Name = "   " },
			wantErr: ErrMissingName,
		},
		{
			name:    "code below minimum",
			mutate:  func(a *Account) { a.Code = 99 },
			wantErr: ErrCodeTooSmall,
		},
		{
			name:    "rollup code below minimum",
			mutate:  func(a *Account) { a.RollupCode = 10 },
			wantErr: ErrRollupCodeTooSmall,
		},
		{
			name:    "code below rollup code",
			mutate:  func(a *Account) { a.Code = 1100; a.RollupCode = 1200 },
			wantErr: ErrCodeBelowRollup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := valid
			tt.mutate(&account)

			err := ValidateAccount(&account)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAccount() = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v should wrap ErrValidation", err)
			}
		})
	}
}

func TestValidateEntry(t *testing.T) {
	amount := func(side Side, value int64) Amount {
		return Amount{AccountID: "acct", Side: side, Amount: decimal.NewFromInt(value)}
	}

	tests := []struct {
		name    string
		amounts []Amount
		wantErr error
	}{
		{
			name:    "balanced entry",
			amounts: []Amount{amount(Debit, 500), amount(Credit, 500)},
			wantErr: nil,
		},
		{
			name:    "balanced split entry",
			amounts: []Amount{amount(Debit, 300), amount(Debit, 200), amount(Credit, 500)},
			wantErr: nil,
		},
		{
			name:    "unbalanced entry",
			amounts: []Amount{amount(Debit, 500), amount(Credit, 400)},
			wantErr: ErrUnbalancedEntry,
		},
		{
			name:    "missing credit side",
			amounts: []Amount{amount(Debit, 500)},
			wantErr: ErrIncompleteEntry,
		},
		{
			name:    "missing debit side",
			amounts: []Amount{amount(Credit, 500)},
			wantErr: ErrIncompleteEntry,
		},
		{
			name:    "no amounts",
			amounts: nil,
			wantErr: ErrIncompleteEntry,
		},
		{
			name:    "zero amount",
			amounts: []Amount{amount(Debit, 0), amount(Credit, 0)},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			amounts: []Amount{amount(Debit, -100), amount(Credit, -100)},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "unknown side",
			amounts: []Amount{amount(Debit, 500), amount(Credit, 500), amount("foo", 100)},
			wantErr: ErrInvalidSide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{
				Description: "test entry",
				Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				Amounts:     tt.amounts,
			}

			err := ValidateEntry(entry)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_Totals(t *testing.T) {
	entry := &Entry{
		Amounts: []Amount{
			{Side: Debit, Amount: decimal.NewFromInt(300)},
			{Side: Debit, Amount: decimal.NewFromInt(200)},
			{Side: Credit, Amount: decimal.NewFromInt(500)},
		},
	}

	if !entry.DebitTotal().Equal(decimal.NewFromInt(500)) {
		t.Errorf("DebitTotal() = %s, want 500", entry.DebitTotal())
	}

	if !entry.CreditTotal().Equal(decimal.NewFromInt(500)) {
		t.Errorf("CreditTotal() = %s, want 500", entry.CreditTotal())
	}
}
