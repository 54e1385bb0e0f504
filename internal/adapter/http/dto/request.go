package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
	"github.com/dtella/chartledger/internal/usecase"
)

// DateFormat is the wire format for entry dates and period bounds.
const DateFormat = "2006-01-02"

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Type       string `json:"type"`
	Code       int64  `json:"code"`
	RollupCode int64  `json:"rollup_code"`
	Name       string `json:"name"`
	Contra     bool   `json:"contra"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Type:       domain.AccountType(r.Type),
		Code:       r.Code,
		RollupCode: r.RollupCode,
		Name:       r.Name,
		Contra:     r.Contra,
	}
}

// AmountItem is one debit or credit line of an entry request.
type AmountItem struct {
	AccountID string          `json:"account_id"`
	Side      string          `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateEntryRequest represents a request to post an entry.
type CreateEntryRequest struct {
	Description string       `json:"description"`
	Date        string       `json:"date,omitempty"`
	Amounts     []AmountItem `json:"amounts"`
}

// ToUseCaseInput converts to use case input. An empty or malformed date is
// left zero; the use case defaults it to the posting time.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	input := usecase.CreateEntryInput{
		Description: r.Description,
	}

	if r.Date != "" {
		date, err := time.Parse(DateFormat, r.Date)
		if err != nil {
			return usecase.CreateEntryInput{}, err
		}
		input.Date = date
	}

	input.Amounts = make([]usecase.AmountInput, len(r.Amounts))
	for i, a := range r.Amounts {
		input.Amounts[i] = usecase.AmountInput{
			AccountID: a.AccountID,
			Side:      domain.Side(a.Side),
			Amount:    a.Amount,
		}
	}

	return input, nil
}
