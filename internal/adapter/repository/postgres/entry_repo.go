package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtella/chartledger/internal/domain"
	"github.com/dtella/chartledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// Create persists the entry and all its amounts inside tx. Amounts cascade
// with the entry at the schema level, so nothing survives a rollback.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO entries (id, description, entry_date, created_at)
		VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.Description, timeToPgDate(entry.Date), entry.CreatedAt)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, amount := range entry.Amounts {
		batch.Queue(`
			INSERT INTO amounts (id, entry_id, account_id, side, amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			amount.ID, amount.EntryID, amount.AccountID, string(amount.Side),
			decimalToNumeric(amount.Amount), amount.CreatedAt)
	}

	results := pgxTx.SendBatch(ctx, batch)
	for range entry.Amounts {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return err
		}
	}

	return results.Close()
}

// GetByID retrieves an entry by ID, without its amounts.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, description, entry_date, created_at
		FROM entries
		WHERE id = $1`, id)

	var entry domain.Entry
	err := row.Scan(&entry.ID, &entry.Description, &entry.Date, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return &entry, nil
}

// ListByAccount lists entries that posted at least one amount to the account,
// newest first.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT e.id, e.description, e.entry_date, e.created_at
		FROM entries e
		JOIN amounts a ON a.entry_id = e.id
		WHERE a.account_id = $1
		ORDER BY e.entry_date DESC, e.id DESC
		LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(&entry.ID, &entry.Description, &entry.Date, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
