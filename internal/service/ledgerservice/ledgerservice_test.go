package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

func NewMock(t *testing.T, opts ...Option) (*Service, *MockAccountRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, ledgerRepo, txManager, opts...)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetAccount(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expected    *domain.Account
		expectErr   bool
	}{
		{
			name: "Existing account returned as-is",
			prepareMock: func() {
				accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1), "USDT").Return(&domain.Account{
					UserID:      1,
					Currency:    "USDT",
					RealBalance: dec("100"),
				}, nil)
			},
			expected: &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("100")},
		},
		{
			name: "Missing account reads as empty",
			prepareMock: func() {
				accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1), "USDT").Return(nil, nil)
			},
			expected: &domain.Account{UserID: 1, Currency: "USDT"},
		},
		{
			name: "Database error",
			prepareMock: func() {
				accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1), "USDT").Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			account, err := service.GetAccount(context.Background(), 1, "USDT")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, account)
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(&domain.Account{
		UserID:      1,
		Currency:    "USDT",
		RealBalance: dec("50"),
	}, nil)
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-1").Return(nil, nil)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.Account) error {
			assert.True(t, account.RealBalance.Equal(dec("80")))
			return nil
		})
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := service.Deposit(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("30"),
		ReferenceID: "dep-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.EntryDeposit, entry.Type)
	assert.Equal(t, domain.BucketReal, entry.Bucket)
	assert.True(t, entry.BalanceBefore.Equal(dec("50")))
	assert.True(t, entry.BalanceAfter.Equal(dec("80")))
	assert.NotEmpty(t, entry.TransactionID)
}

func TestDepositBonusTopUp(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t, WithDepositBonusPercent(dec("10")))
	passThroughTx(txManager)

	account := &domain.Account{UserID: 1, Currency: "USDT"}
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-2").Return(nil, nil)
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-2:bonus").Return(nil, nil)
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(account, nil).Times(2)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var saved []*domain.LedgerEntry
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) error {
			saved = append(saved, entry)
			return nil
		}).Times(2)

	_, err := service.Deposit(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("100"),
		ReferenceID: "dep-2",
	})
	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, domain.EntryDeposit, saved[0].Type)
	assert.Equal(t, domain.EntryBonus, saved[1].Type)
	assert.True(t, saved[1].Amount.Equal(dec("10")))
	assert.Equal(t, "dep-2:bonus", saved[1].ReferenceID)
	assert.True(t, account.RealBalance.Equal(dec("100")))
	assert.True(t, account.BonusBalance.Equal(dec("10")))
}

func TestDepositBonusFailureRollsBackDeposit(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t, WithDepositBonusPercent(dec("10")))

	// Nested Begins join the outer transaction, so only the outermost call
	// commits. A failed bonus write must propagate out of that call, taking
	// the deposit entry down with it.
	var begins int
	var outerErr error
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			begins++
			outer := begins == 1
			err := fn(ctx)
			if outer {
				outerErr = err
			}
			return err
		}).AnyTimes()

	account := &domain.Account{UserID: 1, Currency: "USDT"}
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-3").Return(nil, nil)
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-3:bonus").Return(nil, nil)
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(account, nil).Times(2)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	saveErr := errors.New("bonus write failed")
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) error {
			if entry.Type == domain.EntryBonus {
				return saveErr
			}
			return nil
		}).Times(2)

	entry, err := service.Deposit(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("100"),
		ReferenceID: "dep-3",
	})
	assert.ErrorIs(t, err, saveErr)
	assert.Nil(t, entry)
	assert.ErrorIs(t, outerErr, saveErr)
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name      string
		account   *domain.Account
		amount    decimal.Decimal
		expectErr error
	}{
		{
			name:    "Spends from the real bucket",
			account: &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("100")},
			amount:  dec("40"),
		},
		{
			name:      "Rejects when available is short",
			account:   &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("10")},
			amount:    dec("40"),
			expectErr: ErrInsufficientBalance,
		},
		{
			name: "Bonus does not cover a real-bucket debit",
			account: &domain.Account{
				UserID:       1,
				Currency:     "USDT",
				RealBalance:  dec("10"),
				BonusBalance: dec("100"),
			},
			amount:    dec("40"),
			expectErr: ErrInsufficientBalance,
		},
		{
			name: "Locked funds are not spendable",
			account: &domain.Account{
				UserID:        1,
				Currency:      "USDT",
				RealBalance:   dec("50"),
				LockedBalance: dec("30"),
			},
			amount:    dec("40"),
			expectErr: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager := NewMock(t)
			passThroughTx(txManager)

			accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(tt.account, nil)
			if tt.expectErr == nil {
				accountRepo.EXPECT().UpdateBuckets(gomock.Any(), tt.account).Return(nil)
				ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			before := tt.account.RealBalance
			entry, err := service.Debit(context.Background(), Request{
				UserID:   1,
				Currency: "USDT",
				Amount:   tt.amount,
			})
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, entry)
				assert.True(t, tt.account.RealBalance.Equal(before))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.EntryBet, entry.Type)
			assert.True(t, entry.BalanceAfter.Equal(before.Sub(tt.amount)))
		})
	}
}

func TestCreditBonusFirstPolicy(t *testing.T) {
	tests := []struct {
		name           string
		account        *domain.Account
		expectedBucket domain.Bucket
	}{
		{
			name: "Bonus balance routes the win to the bonus bucket",
			account: &domain.Account{
				UserID:       1,
				Currency:     "USDT",
				BonusBalance: dec("5"),
			},
			expectedBucket: domain.BucketBonus,
		},
		{
			name:           "No bonus routes the win to the real bucket",
			account:        &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("20")},
			expectedBucket: domain.BucketReal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager := NewMock(t)
			passThroughTx(txManager)

			accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(tt.account, nil)
			accountRepo.EXPECT().UpdateBuckets(gomock.Any(), tt.account).Return(nil)
			ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

			entry, err := service.Credit(context.Background(), Request{
				UserID:   1,
				Currency: "USDT",
				Amount:   dec("100"),
			})
			assert.NoError(t, err)
			assert.Equal(t, domain.EntryWin, entry.Type)
			assert.Equal(t, tt.expectedBucket, entry.Bucket)
		})
	}
}

func TestLockUnlockWithdraw(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	account := &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("100")}
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(account, nil).Times(3)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), account).Return(nil).Times(3)
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	lockEntry, err := service.Lock(context.Background(), Request{UserID: 1, Currency: "USDT", Amount: dec("60")})
	assert.NoError(t, err)
	assert.Equal(t, domain.BucketReal, lockEntry.Bucket)
	assert.True(t, account.RealBalance.Equal(dec("40")))
	assert.True(t, account.LockedBalance.Equal(dec("60")))

	unlockEntry, err := service.Unlock(context.Background(), Request{UserID: 1, Currency: "USDT", Amount: dec("10")})
	assert.NoError(t, err)
	assert.Equal(t, domain.EntryUnlock, unlockEntry.Type)
	assert.True(t, account.RealBalance.Equal(dec("50")))
	assert.True(t, account.LockedBalance.Equal(dec("50")))

	withdrawEntry, err := service.Withdraw(context.Background(), Request{UserID: 1, Currency: "USDT", Amount: dec("50")})
	assert.NoError(t, err)
	assert.Equal(t, domain.BucketLocked, withdrawEntry.Bucket)
	assert.True(t, withdrawEntry.BalanceBefore.Equal(dec("50")))
	assert.True(t, withdrawEntry.BalanceAfter.Equal(dec("0")))
	assert.True(t, account.LockedBalance.Equal(dec("0")))
	assert.True(t, account.RealBalance.Equal(dec("50")))
}

func TestWithdrawFunds(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	account := &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("100")}
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "wd-1:lock").Return(nil, nil)
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "wd-1").Return(nil, nil)
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(account, nil).Times(2)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), account).Return(nil).Times(2)

	var saved []*domain.LedgerEntry
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) error {
			saved = append(saved, entry)
			return nil
		}).Times(2)

	entry, err := service.WithdrawFunds(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("60"),
		ReferenceID: "wd-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.EntryWithdraw, entry.Type)
	assert.Len(t, saved, 2)
	assert.Equal(t, domain.EntryLock, saved[0].Type)
	assert.Equal(t, "wd-1:lock", saved[0].ReferenceID)
	assert.Equal(t, domain.EntryWithdraw, saved[1].Type)
	assert.True(t, account.RealBalance.Equal(dec("40")))
	assert.True(t, account.LockedBalance.Equal(dec("0")))
}

func TestWithdrawFundsFailedReleaseRollsBackLock(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t)

	// Both steps run inside one outer transaction. A failed release must
	// surface from that call so the lock entry rolls back with it instead of
	// stranding funds in the locked bucket.
	var begins int
	var outerErr error
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			begins++
			outer := begins == 1
			err := fn(ctx)
			if outer {
				outerErr = err
			}
			return err
		}).AnyTimes()

	account := &domain.Account{UserID: 1, Currency: "USDT", RealBalance: dec("100")}
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "wd-2:lock").Return(nil, nil)
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "wd-2").Return(nil, nil)
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(account, nil).Times(2)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), account).Return(nil).Times(2)

	saveErr := errors.New("withdraw write failed")
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) error {
			if entry.Type == domain.EntryWithdraw {
				return saveErr
			}
			return nil
		}).Times(2)

	entry, err := service.WithdrawFunds(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("60"),
		ReferenceID: "wd-2",
	})
	assert.ErrorIs(t, err, saveErr)
	assert.Nil(t, entry)
	assert.ErrorIs(t, outerErr, saveErr)
}

func TestWithdrawRequiresLockedFunds(t *testing.T) {
	service, accountRepo, _, txManager := NewMock(t)
	passThroughTx(txManager)

	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(&domain.Account{
		UserID:      1,
		Currency:    "USDT",
		RealBalance: dec("100"),
	}, nil)

	_, err := service.Withdraw(context.Background(), Request{UserID: 1, Currency: "USDT", Amount: dec("10")})
	assert.ErrorIs(t, err, ErrInsufficientLocked)
}

func TestInvalidAmount(t *testing.T) {
	service, _, _, _ := NewMock(t)

	for _, amount := range []decimal.Decimal{decimal.Zero, dec("-5")} {
		_, err := service.Deposit(context.Background(), Request{UserID: 1, Currency: "USDT", Amount: amount})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestReplayReturnsExistingEntry(t *testing.T) {
	service, _, ledgerRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	existing := &domain.LedgerEntry{
		TransactionID: "tx-1",
		UserID:        1,
		Type:          domain.EntryDeposit,
		Amount:        dec("30"),
		ReferenceID:   "dep-1",
	}
	ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-1").Return(existing, nil)

	entry, err := service.Deposit(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("30"),
		ReferenceID: "dep-1",
	})
	assert.NoError(t, err)
	assert.Same(t, existing, entry)
}

func TestReplayLosingInsertRaceRefetches(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager := NewMock(t)
	passThroughTx(txManager)

	existing := &domain.LedgerEntry{TransactionID: "tx-1", ReferenceID: "dep-1"}

	// The pre-check misses, a concurrent retry inserts first, and the
	// unique index rejects our insert. The existing entry wins.
	gomock.InOrder(
		ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-1").Return(nil, nil),
		ledgerRepo.EXPECT().FindByReferenceID(gomock.Any(), "dep-1").Return(existing, nil),
	)
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), int64(1), "USDT").Return(&domain.Account{UserID: 1, Currency: "USDT"}, nil)
	accountRepo.EXPECT().UpdateBuckets(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	entry, err := service.Deposit(context.Background(), Request{
		UserID:      1,
		Currency:    "USDT",
		Amount:      dec("30"),
		ReferenceID: "dep-1",
	})
	assert.NoError(t, err)
	assert.Same(t, existing, entry)
}
