package dto

import (
	"time"

	"github.com/dtella/chartledger/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Code       int64     `json:"code"`
	RollupCode int64     `json:"rollup_code"`
	Name       string    `json:"name"`
	Contra     bool      `json:"contra"`
	Rollup     bool      `json:"rollup"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account.
func AccountFromDomain(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:         account.ID,
		Type:       string(account.Type),
		Code:       account.Code,
		RollupCode: account.RollupCode,
		Name:       account.Name,
		Contra:     account.Contra,
		Rollup:     account.IsRollup(),
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

// AccountsFromDomain converts a slice of domain accounts.
func AccountsFromDomain(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		out[i] = AccountFromDomain(account)
	}
	return out
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int64             `json:"total"`
}

// AmountResponse represents an amount in API responses.
type AmountResponse struct {
	ID        string `json:"id"`
	EntryID   string `json:"entry_id"`
	AccountID string `json:"account_id"`
	Side      string `json:"side"`
	Amount    string `json:"amount"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Amounts     []AmountResponse `json:"amounts,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// EntryFromDomain converts a domain entry.
func EntryFromDomain(entry *domain.Entry) EntryResponse {
	out := EntryResponse{
		ID:          entry.ID,
		Description: entry.Description,
		Date:        entry.Date.Format(DateFormat),
		CreatedAt:   entry.CreatedAt,
	}

	for _, amount := range entry.Amounts {
		out.Amounts = append(out.Amounts, AmountResponse{
			ID:        amount.ID,
			EntryID:   amount.EntryID,
			AccountID: amount.AccountID,
			Side:      string(amount.Side),
			Amount:    amount.Amount.String(),
		})
	}

	return out
}

// EntriesFromDomain converts a slice of domain entries.
func EntriesFromDomain(entries []*domain.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = EntryFromDomain(entry)
	}
	return out
}

// ListEntriesResponse wraps a list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int64           `json:"total"`
}

// BalanceResponse represents a balance computation result.
type BalanceResponse struct {
	AccountID string `json:"account_id,omitempty"`
	Type      string `json:"type,omitempty"`
	Balance   string `json:"balance"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
}

// TrialBalanceResponse represents the accounting-equation check.
type TrialBalanceResponse struct {
	TrialBalance string `json:"trial_balance"`
	Balanced     bool   `json:"balanced"`
	From         string `json:"from,omitempty"`
	To           string `json:"to,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
