package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
)

// BalanceUseCase computes account balances over posted amounts.
type BalanceUseCase struct {
	accountRepo AccountRepository
	amountRepo  AmountRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(accountRepo AccountRepository, amountRepo AmountRepository) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo: accountRepo,
		amountRepo:  amountRepo,
	}
}

// Balance returns the account's balance for the period, signed by the
// account's normal balance side and contra flag. Rollup accounts have no
// balance of their own; asking for one is an invalid operation.
func (uc *BalanceUseCase) Balance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if account.IsRollup() {
		return decimal.Zero, domain.ErrBalanceOnRollup
	}

	return accountBalance(ctx, uc.amountRepo, account, period)
}

// RollupBalance returns the aggregated balance of the rollup account's
// children, negating contra children's contributions. The rollup account's
// own contra flag is not consulted.
func (uc *BalanceUseCase) RollupBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if !account.IsRollup() {
		return decimal.Zero, domain.ErrNotRollup
	}

	children, err := uc.accountRepo.ListByRollupCode(ctx, account.Type, account.Code, account.Code)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, child := range children {
		balance, err := accountBalance(ctx, uc.amountRepo, child, period)
		if err != nil {
			return decimal.Zero, err
		}
		if child.Contra {
			total = total.Sub(balance)
		} else {
			total = total.Add(balance)
		}
	}

	return total, nil
}

// ChildAccounts resolves the accounts belonging to a rollup account: every
// same-type account whose rollup code equals the receiver's code, the
// receiver itself excluded.
func (uc *BalanceUseCase) ChildAccounts(ctx context.Context, accountID string) ([]*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsRollup() {
		return nil, domain.ErrNotRollup
	}

	return uc.accountRepo.ListByRollupCode(ctx, account.Type, account.Code, account.Code)
}

// CreditsBalance returns the sum of the account's credit amounts for the period.
func (uc *BalanceUseCase) CreditsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return uc.sideBalance(ctx, accountID, domain.Credit, period)
}

// DebitsBalance returns the sum of the account's debit amounts for the period.
func (uc *BalanceUseCase) DebitsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return uc.sideBalance(ctx, accountID, domain.Debit, period)
}

func (uc *BalanceUseCase) sideBalance(ctx context.Context, accountID string, side domain.Side, period domain.Period) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return uc.amountRepo.SumByAccount(ctx, account.ID, side, period)
}

// accountBalance computes the signed balance of a non-rollup account.
func accountBalance(ctx context.Context, amounts AmountRepository, account *domain.Account, period domain.Period) (decimal.Decimal, error) {
	debits, err := amounts.SumByAccount(ctx, account.ID, domain.Debit, period)
	if err != nil {
		return decimal.Zero, err
	}

	credits, err := amounts.SumByAccount(ctx, account.ID, domain.Credit, period)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Net(debits, credits), nil
}
