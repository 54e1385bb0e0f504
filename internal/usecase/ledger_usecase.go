package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
)

// LedgerUseCase computes ledger-wide aggregates: per-type balances and the
// trial balance of the accounting equation.
type LedgerUseCase struct {
	accountRepo AccountRepository
	amountRepo  AmountRepository
	cache       Cache
	cacheTTL    time.Duration
}

// NewLedgerUseCase creates a new LedgerUseCase. cache may be nil to disable
// caching of unwindowed aggregates.
func NewLedgerUseCase(accountRepo AccountRepository, amountRepo AmountRepository, cache Cache, cacheTTL time.Duration) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
		amountRepo:  amountRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// TypeBalance sums the balances of every account of one concrete type,
// negating contra accounts' contributions. Rollup accounts are skipped: they
// carry no amounts, and summing only leaves counts every amount exactly once.
func (uc *LedgerUseCase) TypeBalance(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error) {
	if !accountType.Valid() {
		return decimal.Zero, domain.ErrInvalidType
	}

	key := "balance:type:" + string(accountType)
	if cached, ok := uc.cached(ctx, key, period); ok {
		return cached, nil
	}

	accounts, err := uc.accountRepo.ListByType(ctx, accountType)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		if account.IsRollup() {
			continue
		}

		balance, err := accountBalance(ctx, uc.amountRepo, account, period)
		if err != nil {
			return decimal.Zero, err
		}
		if account.Contra {
			total = total.Sub(balance)
		} else {
			total = total.Add(balance)
		}
	}

	uc.store(ctx, key, period, total)
	return total, nil
}

// TrialBalance computes Asset - (Liability + Equity + Revenue - Expense). A
// consistent ledger nets to zero; a non-zero result signals unbalanced data
// and is reported to the caller, never raised as an error.
func (uc *LedgerUseCase) TrialBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	const key = "balance:trial"
	if cached, ok := uc.cached(ctx, key, period); ok {
		return cached, nil
	}

	totals := make(map[domain.AccountType]decimal.Decimal, len(domain.AccountTypes))
	for _, accountType := range domain.AccountTypes {
		total, err := uc.TypeBalance(ctx, accountType, period)
		if err != nil {
			return decimal.Zero, err
		}
		totals[accountType] = total
	}

	trial := totals[domain.Asset].
		Sub(totals[domain.Liability].
			Add(totals[domain.Equity]).
			Add(totals[domain.Revenue]).
			Sub(totals[domain.Expense]))

	uc.store(ctx, key, period, trial)
	return trial, nil
}

// cached looks up an unwindowed aggregate. Windowed queries bypass the cache,
// and cache failures fall through to the database.
func (uc *LedgerUseCase) cached(ctx context.Context, key string, period domain.Period) (decimal.Decimal, bool) {
	if uc.cache == nil || !period.Unbounded() {
		return decimal.Zero, false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

func (uc *LedgerUseCase) store(ctx context.Context, key string, period domain.Period, value decimal.Decimal) {
	if uc.cache == nil || !period.Unbounded() {
		return
	}

	_ = uc.cache.Set(ctx, key, value.String(), uc.cacheTTL)
}
