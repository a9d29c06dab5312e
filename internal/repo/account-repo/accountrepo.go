package accountrepo

import (
	"context"
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

func (r *Repository) GetAccount(ctx context.Context, userID int64, currency string) (*domain.Account, error) {
	query := `
        SELECT id, user_id, currency, real_balance, bonus_balance, locked_balance, created_at, updated_at
        FROM balance_accounts
        WHERE user_id = $1 AND currency = $2
    `
	row := r.db.QueryRow(ctx, query, userID, currency)
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get balance account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetAccountForUpdate acquires an exclusive row lock on the (userID, currency)
// account, creating the row first if it does not exist. Must be called inside
// a transaction; the lock is held until commit or rollback.
func (r *Repository) GetAccountForUpdate(ctx context.Context, userID int64, currency string) (*domain.Account, error) {
	query := `
        SELECT id, user_id, currency, real_balance, bonus_balance, locked_balance, created_at, updated_at
        FROM balance_accounts
        WHERE user_id = $1 AND currency = $2
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID, currency)
	account, err := scanAccount(row)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to lock balance account", zap.Error(err))
		return nil, err
	}

	// Lazy creation. ON CONFLICT DO NOTHING absorbs a concurrent insert,
	// after which the locked re-select returns the winner's row.
	insert := `
        INSERT INTO balance_accounts (user_id, currency)
        VALUES ($1, $2)
        ON CONFLICT (user_id, currency) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, insert, userID, currency); err != nil {
		zap.L().Error("failed to create balance account", zap.Error(err))
		return nil, err
	}

	row = r.db.QueryRow(ctx, query, userID, currency)
	account, err = scanAccount(row)
	if err != nil {
		zap.L().Error("failed to lock balance account after create", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) UpdateBuckets(ctx context.Context, account *domain.Account) error {
	query := `
        UPDATE balance_accounts
        SET real_balance = $1, bonus_balance = $2, locked_balance = $3, updated_at = now()
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, account.RealBalance, account.BonusBalance, account.LockedBalance, account.ID)
	if err != nil {
		zap.L().Error("failed to update balance buckets", zap.Error(err))
		return err
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.UserID, &account.Currency,
		&account.RealBalance, &account.BonusBalance, &account.LockedBalance,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
