package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avolkhin/luckydraw/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const selectQuery = `
        SELECT id, user_id, currency, real_balance, bonus_balance, locked_balance, created_at, updated_at
        FROM balance_accounts
        WHERE user_id = $1 AND currency = $2
    `

func accountRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "currency", "real_balance", "bonus_balance", "locked_balance", "created_at", "updated_at",
	}).AddRow(1, int64(100), "USDT", decimal.NewFromInt(50), decimal.NewFromInt(10), decimal.Zero, now, now)
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(int64(100), "USDT").
					WillReturnRows(accountRows(now))
			},
			found: true,
		},
		{
			name: "Missing account returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(int64(100), "USDT").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(int64(100), "USDT").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.GetAccount(context.Background(), 100, "USDT")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if !tt.found {
				assert.Nil(t, account)
				return
			}
			assert.Equal(t, int64(100), account.UserID)
			assert.True(t, account.RealBalance.Equal(decimal.NewFromInt(50)))
			assert.True(t, account.BonusBalance.Equal(decimal.NewFromInt(10)))
		})
	}
}

func TestRepository_GetAccountForUpdate(t *testing.T) {
	t.Run("Locks the existing row", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(int64(100), "USDT").
			WillReturnRows(accountRows(time.Now()))

		account, err := repo.GetAccountForUpdate(context.Background(), 100, "USDT")
		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
	})

	t.Run("Creates the row lazily then relocks", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(int64(100), "USDT").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, currency) DO NOTHING")).
			WithArgs(int64(100), "USDT").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(int64(100), "USDT").
			WillReturnRows(accountRows(time.Now()))

		account, err := repo.GetAccountForUpdate(context.Background(), 100, "USDT")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), account.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure surfaces", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(int64(100), "USDT").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, currency) DO NOTHING")).
			WithArgs(int64(100), "USDT").
			WillReturnError(errors.New("database error"))

		_, err := repo.GetAccountForUpdate(context.Background(), 100, "USDT")
		assert.Error(t, err)
	})
}

func TestRepository_UpdateBuckets(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE balance_accounts")).
		WithArgs(decimal.NewFromInt(80), decimal.NewFromInt(10), decimal.Zero, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateBuckets(context.Background(), &domain.Account{
		ID:           1,
		RealBalance:  decimal.NewFromInt(80),
		BonusBalance: decimal.NewFromInt(10),
	})
	assert.NoError(t, err)
}
