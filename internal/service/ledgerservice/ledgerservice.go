package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

type AccountRepo interface {
	GetAccount(ctx context.Context, userID int64, currency string) (*domain.Account, error)
	GetAccountForUpdate(ctx context.Context, userID int64, currency string) (*domain.Account, error)
	UpdateBuckets(ctx context.Context, account *domain.Account) error
}

type LedgerRepo interface {
	Save(ctx context.Context, entry *domain.LedgerEntry) error
	FindByReferenceID(ctx context.Context, referenceID string) (*domain.LedgerEntry, error)
	FindByUserID(ctx context.Context, userID int64, currency string) ([]domain.LedgerEntry, error)
}

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientLocked  = errors.New("insufficient locked balance")
)

// CreditPolicy picks the destination bucket for a win credit.
type CreditPolicy func(account *domain.Account) domain.Bucket

// CreditBonusFirst routes wins to the bonus bucket while any bonus balance
// remains, so bonus funds are played through before cash accumulates.
func CreditBonusFirst(account *domain.Account) domain.Bucket {
	if account.BonusBalance.IsPositive() {
		return domain.BucketBonus
	}
	return domain.BucketReal
}

type Service struct {
	accountRepo  AccountRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
	creditPolicy CreditPolicy
	// deposit bonus top-up, percent of the deposited amount
	depositBonusPercent decimal.Decimal
}

type Option func(*Service)

func WithCreditPolicy(policy CreditPolicy) Option {
	return func(s *Service) { s.creditPolicy = policy }
}

func WithDepositBonusPercent(percent decimal.Decimal) Option {
	return func(s *Service) { s.depositBonusPercent = percent }
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, opts ...Option) *Service {
	s := &Service{
		accountRepo:         accountRepo,
		ledgerRepo:          ledgerRepo,
		txManager:           txManager,
		creditPolicy:        CreditBonusFirst,
		depositBonusPercent: decimal.Zero,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request describes one balance-affecting operation. Operations carrying a
// ReferenceID are idempotent: a retry returns the original entry unchanged.
type Request struct {
	UserID      int64
	Currency    string
	Amount      decimal.Decimal
	ReferenceID string
	Metadata    map[string]any
}

// mutation adjusts the locked account's buckets and reports which bucket the
// ledger entry snapshots. It must not touch anything outside the account.
type mutation func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error)

func (s *Service) GetAccount(ctx context.Context, userID int64, currency string) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, userID, currency)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		// Unreferenced accounts read as empty; the row appears on first mutation.
		return &domain.Account{UserID: userID, Currency: currency}, nil
	}
	return account, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int64, currency string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindByUserID(ctx, userID, currency)
	if err != nil {
		zap.L().Error("failed to get ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Deposit adds funds to the real bucket, plus the policy-driven bonus top-up.
// The deposit entry and the bonus grant share one transaction, so a failed
// bonus write rolls the deposit back too.
func (s *Service) Deposit(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.apply(ctx, req, domain.EntryDeposit, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
			before := account.RealBalance
			account.RealBalance = account.RealBalance.Add(req.Amount)
			return domain.BucketReal, before, account.RealBalance, nil
		})
		if err != nil {
			return err
		}

		if bonus := req.Amount.Mul(s.depositBonusPercent).Div(decimal.NewFromInt(100)); bonus.IsPositive() {
			bonusReq := Request{
				UserID:   req.UserID,
				Currency: req.Currency,
				Amount:   bonus,
				Metadata: map[string]any{"deposit_reference": req.ReferenceID},
			}
			if req.ReferenceID != "" {
				bonusReq.ReferenceID = req.ReferenceID + ":bonus"
			}
			if _, err := s.BonusGrant(ctx, bonusReq); err != nil {
				zap.L().Error("failed to grant deposit bonus", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Debit spends from the real bucket. Requires available >= amount.
func (s *Service) Debit(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryBet, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		if account.Available().LessThan(req.Amount) {
			return "", decimal.Zero, decimal.Zero, ErrInsufficientBalance
		}
		before := account.RealBalance
		account.RealBalance = account.RealBalance.Sub(req.Amount)
		if account.RealBalance.IsNegative() {
			return "", decimal.Zero, decimal.Zero, ErrInsufficientBalance
		}
		return domain.BucketReal, before, account.RealBalance, nil
	})
}

// Credit pays out a win into the bucket chosen by the credit policy.
func (s *Service) Credit(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryWin, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		switch s.creditPolicy(account) {
		case domain.BucketBonus:
			before := account.BonusBalance
			account.BonusBalance = account.BonusBalance.Add(req.Amount)
			return domain.BucketBonus, before, account.BonusBalance, nil
		default:
			before := account.RealBalance
			account.RealBalance = account.RealBalance.Add(req.Amount)
			return domain.BucketReal, before, account.RealBalance, nil
		}
	})
}

// Lock moves funds from real to locked, typically staging a withdrawal.
func (s *Service) Lock(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryLock, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		if account.RealBalance.LessThan(req.Amount) {
			return "", decimal.Zero, decimal.Zero, ErrInsufficientBalance
		}
		before := account.RealBalance
		account.RealBalance = account.RealBalance.Sub(req.Amount)
		account.LockedBalance = account.LockedBalance.Add(req.Amount)
		return domain.BucketReal, before, account.RealBalance, nil
	})
}

// Unlock returns locked funds to the real bucket.
func (s *Service) Unlock(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryUnlock, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		if account.LockedBalance.LessThan(req.Amount) {
			return "", decimal.Zero, decimal.Zero, ErrInsufficientLocked
		}
		before := account.RealBalance
		account.LockedBalance = account.LockedBalance.Sub(req.Amount)
		account.RealBalance = account.RealBalance.Add(req.Amount)
		return domain.BucketReal, before, account.RealBalance, nil
	})
}

// Withdraw releases previously locked funds out of the system.
func (s *Service) Withdraw(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryWithdraw, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		if account.LockedBalance.LessThan(req.Amount) {
			return "", decimal.Zero, decimal.Zero, ErrInsufficientLocked
		}
		before := account.LockedBalance
		account.LockedBalance = account.LockedBalance.Sub(req.Amount)
		return domain.BucketLocked, before, account.LockedBalance, nil
	})
}

// WithdrawFunds stages the amount through the locked bucket and releases it
// in one transaction, leaving a LOCK and a WITHDRAW entry behind. Either both
// steps commit or neither does, so a failed release never strands funds in
// the locked bucket.
func (s *Service) WithdrawFunds(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	lockReq := req
	lockReq.ReferenceID = ""
	if req.ReferenceID != "" {
		lockReq.ReferenceID = req.ReferenceID + ":lock"
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.Lock(ctx, lockReq); err != nil {
			return err
		}
		var err error
		entry, err = s.Withdraw(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Refund reverses an earlier debit back into the real bucket.
func (s *Service) Refund(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryRefund, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		before := account.RealBalance
		account.RealBalance = account.RealBalance.Add(req.Amount)
		return domain.BucketReal, before, account.RealBalance, nil
	})
}

// BonusGrant adds promotional funds to the bonus bucket.
func (s *Service) BonusGrant(ctx context.Context, req Request) (*domain.LedgerEntry, error) {
	return s.apply(ctx, req, domain.EntryBonus, func(account *domain.Account) (domain.Bucket, decimal.Decimal, decimal.Decimal, error) {
		before := account.BonusBalance
		account.BonusBalance = account.BonusBalance.Add(req.Amount)
		return domain.BucketBonus, before, account.BonusBalance, nil
	})
}

// apply runs the shared check-existing → lock → validate → mutate → record
// sequence every ledger operation follows. The bucket mutation and the entry
// append commit together or not at all.
func (s *Service) apply(ctx context.Context, req Request, entryType domain.EntryType, mutate mutation) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if req.ReferenceID != "" {
		existing, err := s.ledgerRepo.FindByReferenceID(ctx, req.ReferenceID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			zap.L().Info("ledger operation replayed, returning existing entry",
				zap.String("referenceID", req.ReferenceID),
				zap.String("transactionID", existing.TransactionID))
			return existing, nil
		}
	}

	entry := &domain.LedgerEntry{
		TransactionID: uuid.New().String(),
		UserID:        req.UserID,
		Currency:      req.Currency,
		Type:          entryType,
		Amount:        req.Amount,
		ReferenceID:   req.ReferenceID,
		Metadata:      req.Metadata,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, req.UserID, req.Currency)
		if err != nil {
			return err
		}

		bucket, before, after, err := mutate(account)
		if err != nil {
			return err
		}
		entry.Bucket = bucket
		entry.BalanceBefore = before
		entry.BalanceAfter = after

		if err := s.accountRepo.UpdateBuckets(ctx, account); err != nil {
			return err
		}
		if err := s.ledgerRepo.Save(ctx, entry); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// A concurrent retry can win the reference_id race between the
		// pre-check and the insert; hand back its entry instead of failing.
		if pg.IsUniqueViolation(err) && req.ReferenceID != "" {
			existing, findErr := s.ledgerRepo.FindByReferenceID(ctx, req.ReferenceID)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrInsufficientLocked) {
			zap.L().Error("ledger operation failed",
				zap.String("type", string(entryType)),
				zap.Int64("userID", req.UserID),
				zap.Error(err))
		}
		return nil, fmt.Errorf("ledger %s: %w", entryType, err)
	}
	return entry, nil
}
