package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	GetByCode(ctx context.Context, accountType domain.AccountType, code int64) (*domain.Account, error)
	ListByType(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error)
	// ListByRollupCode returns same-type accounts whose rollup code equals
	// rollupCode, excluding the account with excludeCode.
	ListByRollupCode(ctx context.Context, accountType domain.AccountType, rollupCode, excludeCode int64) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// AmountRepository defines data access for posted amounts.
type AmountRepository interface {
	// SumByAccount sums one side of an account's amounts over entries dated
	// within the period.
	SumByAccount(ctx context.Context, accountID string, side domain.Side, period domain.Period) (decimal.Decimal, error)
	ListByEntry(ctx context.Context, entryID string) ([]domain.Amount, error)
}

// EntryRepository defines data access for entries.
type EntryRepository interface {
	// Create persists the entry and all its amounts inside tx.
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
