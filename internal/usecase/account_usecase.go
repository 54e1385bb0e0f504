package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dtella/chartledger/internal/domain"
)

// AccountUseCase handles chart-of-accounts management.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Type       domain.AccountType
	Code       int64
	RollupCode int64
	Name       string
	Contra     bool
}

// CreateAccount validates and persists a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	now := time.Now().UTC()

	account := &domain.Account{
		ID:         uc.idGen.Generate(),
		Type:       input.Type,
		Code:       input.Code,
		RollupCode: input.RollupCode,
		Name:       strings.TrimSpace(input.Name),
		Contra:     input.Contra,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := domain.ValidateAccount(account); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByCode retrieves an account by type and code.
func (uc *AccountUseCase) GetAccountByCode(ctx context.Context, accountType domain.AccountType, code int64) (*domain.Account, error) {
	if !accountType.Valid() {
		return nil, domain.ErrInvalidType
	}
	return uc.accountRepo.GetByCode(ctx, accountType, code)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}
	if input.Limit > 500 {
		input.Limit = 500
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// ListAccountsByType lists every account of one concrete type.
func (uc *AccountUseCase) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error) {
	if !accountType.Valid() {
		return nil, domain.ErrInvalidType
	}
	return uc.accountRepo.ListByType(ctx, accountType)
}
