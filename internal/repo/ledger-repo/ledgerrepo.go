package ledgerrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Save appends one immutable ledger entry. The partial unique index on
// reference_id rejects a second successful entry for the same key.
func (r *Repository) Save(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries
            (transaction_id, user_id, currency, entry_type, bucket, amount, balance_before, balance_after, reference_id, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}
	var referenceID *string
	if entry.ReferenceID != "" {
		referenceID = &entry.ReferenceID
	}
	row := r.db.QueryRow(ctx, query,
		entry.TransactionID, entry.UserID, entry.Currency, entry.Type, entry.Bucket,
		entry.Amount, entry.BalanceBefore, entry.BalanceAfter, referenceID, metadata,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("failed to save ledger entry", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByReferenceID(ctx context.Context, referenceID string) (*domain.LedgerEntry, error) {
	query := `
        SELECT id, transaction_id, user_id, currency, entry_type, bucket, amount, balance_before, balance_after,
               COALESCE(reference_id, ''), metadata, created_at
        FROM ledger_entries
        WHERE reference_id = $1
    `
	row := r.db.QueryRow(ctx, query, referenceID)
	entry, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find ledger entry by reference", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64, currency string) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, transaction_id, user_id, currency, entry_type, bucket, amount, balance_before, balance_after,
               COALESCE(reference_id, ''), metadata, created_at
        FROM ledger_entries
        WHERE user_id = $1 AND currency = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, currency)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	var metadata []byte
	err := row.Scan(
		&entry.ID, &entry.TransactionID, &entry.UserID, &entry.Currency, &entry.Type, &entry.Bucket,
		&entry.Amount, &entry.BalanceBefore, &entry.BalanceAfter, &entry.ReferenceID, &metadata, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
			return nil, err
		}
	}
	return &entry, nil
}
