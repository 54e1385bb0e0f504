package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/domain"
)

// AmountRepository implements usecase.AmountRepository.
type AmountRepository struct {
	pool *pgxpool.Pool
}

// NewAmountRepository creates a new AmountRepository.
func NewAmountRepository(pool *pgxpool.Pool) *AmountRepository {
	return &AmountRepository{pool: pool}
}

// SumByAccount sums one side of an account's amounts over entries dated
// within the period. Bounds are inclusive; a nil bound is unbounded.
func (r *AmountRepository) SumByAccount(ctx context.Context, accountID string, side domain.Side, period domain.Period) (decimal.Decimal, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(a.amount), 0)
		FROM amounts a
		JOIN entries e ON e.id = a.entry_id
		WHERE a.account_id = $1
		  AND a.side = $2
		  AND ($3::date IS NULL OR e.entry_date >= $3)
		  AND ($4::date IS NULL OR e.entry_date <= $4)`,
		accountID, string(side), dateBound(period.From), dateBound(period.To))

	var total pgtype.Numeric
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// ListByEntry retrieves an entry's amounts in posting order.
func (r *AmountRepository) ListByEntry(ctx context.Context, entryID string) ([]domain.Amount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, entry_id, account_id, side, amount, created_at
		FROM amounts
		WHERE entry_id = $1
		ORDER BY id`,
		entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amounts []domain.Amount
	for rows.Next() {
		var (
			amount domain.Amount
			side   string
			value  pgtype.Numeric
		)

		err := rows.Scan(&amount.ID, &amount.EntryID, &amount.AccountID, &side, &value, &amount.CreatedAt)
		if err != nil {
			return nil, err
		}

		amount.Side = domain.Side(side)
		amount.Amount = numericToDecimal(value)
		amounts = append(amounts, amount)
	}

	return amounts, rows.Err()
}
