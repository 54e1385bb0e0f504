package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
)

// EntryUseCase handles atomic posting of balanced entries.
type EntryUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	amountRepo  AmountRepository
	idGen       IDGenerator
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	amountRepo AmountRepository,
	idGen IDGenerator,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		amountRepo:  amountRepo,
		idGen:       idGen,
	}
}

// AmountInput is one debit or credit line of an entry.
type AmountInput struct {
	AccountID string
	Side      domain.Side
	Amount    decimal.Decimal
}

// CreateEntryInput represents input for posting an entry.
type CreateEntryInput struct {
	Description string
	Date        time.Time
	Amounts     []AmountInput
}

// CreateEntry validates and records a balanced entry with all its amounts in a
// single transaction. Validation failures surface before anything is written;
// storage failures are returned unchanged with nothing committed.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	entry := &domain.Entry{
		ID:          uc.idGen.Generate(),
		Description: input.Description,
		Date:        date,
		CreatedAt:   now,
	}

	entry.Amounts = make([]domain.Amount, 0, len(input.Amounts))
	for _, in := range input.Amounts {
		entry.Amounts = append(entry.Amounts, domain.Amount{
			ID:        uc.idGen.Generate(),
			EntryID:   entry.ID,
			AccountID: in.AccountID,
			Side:      in.Side,
			Amount:    in.Amount,
			CreatedAt: now,
		})
	}

	if err := domain.ValidateEntry(entry); err != nil {
		return nil, err
	}

	if err := uc.checkAccounts(ctx, entry); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// checkAccounts verifies that every referenced account exists and that none is
// a rollup account. Rollup accounts hold no amounts of their own.
func (uc *EntryUseCase) checkAccounts(ctx context.Context, entry *domain.Entry) error {
	seen := make(map[string]struct{}, len(entry.Amounts))
	ids := make([]string, 0, len(entry.Amounts))
	for _, a := range entry.Amounts {
		if _, ok := seen[a.AccountID]; ok {
			continue
		}
		seen[a.AccountID] = struct{}{}
		ids = append(ids, a.AccountID)
	}

	accounts, err := uc.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(accounts) != len(ids) {
		return domain.ErrAccountNotFound
	}

	for _, account := range accounts {
		if account.IsRollup() {
			return domain.ErrAmountOnRollup
		}
	}
	return nil
}

// GetEntry retrieves an entry with its amounts.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	amounts, err := uc.amountRepo.ListByEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Amounts = amounts

	return entry, nil
}

// ListEntriesByAccountInput represents input for listing an account's entries.
type ListEntriesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListEntriesByAccount lists entries that touch an account.
func (uc *EntryUseCase) ListEntriesByAccount(ctx context.Context, input ListEntriesByAccountInput) ([]*domain.Entry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.entryRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
