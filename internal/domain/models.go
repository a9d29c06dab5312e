package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoundStatus string

const (
	RoundOngoing   RoundStatus = "ONGOING"
	RoundCompleted RoundStatus = "COMPLETED"
	RoundDrawn     RoundStatus = "DRAWN"
	RoundCancelled RoundStatus = "CANCELLED"
)

type EntryType string

const (
	EntryDeposit  EntryType = "DEPOSIT"
	EntryBet      EntryType = "BET"
	EntryWin      EntryType = "WIN"
	EntryLock     EntryType = "LOCK"
	EntryUnlock   EntryType = "UNLOCK"
	EntryWithdraw EntryType = "WITHDRAW"
	EntryBonus    EntryType = "BONUS"
	EntryRefund   EntryType = "REFUND"
)

// Bucket names the balance bucket a ledger entry snapshots.
type Bucket string

const (
	BucketReal   Bucket = "real"
	BucketBonus  Bucket = "bonus"
	BucketLocked Bucket = "locked"
)

type PrizeType string

const (
	PrizeCash     PrizeType = "CASH"
	PrizeCrypto   PrizeType = "CRYPTO"
	PrizePhysical PrizeType = "PHYSICAL"
)

type PrizeStatus string

const (
	PrizePending     PrizeStatus = "PENDING"
	PrizeDistributed PrizeStatus = "DISTRIBUTED"
	PrizeCancelled   PrizeStatus = "CANCELLED"
)

type Product struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	SalePrice      decimal.Decimal `db:"sale_price"`
	OriginalPrice  decimal.Decimal `db:"original_price"`
	PrizeType      PrizeType       `db:"prize_type"`
	LuckyDraw      bool            `db:"lucky_draw"`
	AutoCreateNext bool            `db:"auto_create_next"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Account struct {
	ID            int             `db:"id"`
	UserID        int64           `db:"user_id"`
	Currency      string          `db:"currency"`
	RealBalance   decimal.Decimal `db:"real_balance"`
	BonusBalance  decimal.Decimal `db:"bonus_balance"`
	LockedBalance decimal.Decimal `db:"locked_balance"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// Total is the sum of the real and bonus buckets.
func (a *Account) Total() decimal.Decimal {
	return a.RealBalance.Add(a.BonusBalance)
}

// Available is what can currently be spent: total minus locked funds.
func (a *Account) Available() decimal.Decimal {
	return a.Total().Sub(a.LockedBalance)
}

// Withdrawable is the portion eligible to leave the system.
func (a *Account) Withdrawable() decimal.Decimal {
	return a.RealBalance
}

type LedgerEntry struct {
	ID            int             `db:"id"`
	TransactionID string          `db:"transaction_id"`
	UserID        int64           `db:"user_id"`
	Currency      string          `db:"currency"`
	Type          EntryType       `db:"entry_type"`
	Bucket        Bucket          `db:"bucket"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	ReferenceID   string          `db:"reference_id"`
	Metadata      map[string]any  `db:"metadata"`
	CreatedAt     time.Time       `db:"created_at"`
}

type DrawRound struct {
	ID             int             `db:"id"`
	ProductID      int             `db:"product_id"`
	RoundNumber    int             `db:"round_number"`
	TotalSpots     int             `db:"total_spots"`
	SoldSpots      int             `db:"sold_spots"`
	PricePerSpot   decimal.Decimal `db:"price_per_spot"`
	PrizeValue     decimal.Decimal `db:"prize_value"`
	Status         RoundStatus     `db:"status"`
	AutoCreateNext bool            `db:"auto_create_next"`
	CompletedAt    *time.Time      `db:"completed_at"`
	DrawnAt        *time.Time      `db:"drawn_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

// Remaining is the number of unsold spots.
func (r *DrawRound) Remaining() int {
	return r.TotalSpots - r.SoldSpots
}

type Participation struct {
	ID          int             `db:"id"`
	DrawRoundID int             `db:"draw_round_id"`
	UserID      int64           `db:"user_id"`
	Quantity    int             `db:"quantity"`
	StartNumber int             `db:"start_number"`
	EndNumber   int             `db:"end_number"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	OrderNumber string          `db:"order_number"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Contains reports whether the spot number falls inside the allocated range.
func (p *Participation) Contains(number int) bool {
	return number >= p.StartNumber && number <= p.EndNumber
}

type DrawResult struct {
	ID                int             `db:"id"`
	DrawRoundID       int             `db:"draw_round_id"`
	WinningNumber     int             `db:"winning_number"`
	WinnerUserID      int64           `db:"winner_user_id"`
	PrizeType         PrizeType       `db:"prize_type"`
	PrizeValue        decimal.Decimal `db:"prize_value"`
	PrizeStatus       PrizeStatus     `db:"prize_status"`
	TimestampSum      int64           `db:"timestamp_sum"`
	BlockDistance     int             `db:"block_distance"`
	TargetBlockHeight int64           `db:"target_block_height"`
	TargetBlockHash   string          `db:"target_block_hash"`
	HashLast6Digits   string          `db:"hash_last6"`
	CompletionTime    time.Time       `db:"completion_time"`
	BlockTime         time.Time       `db:"block_time"`
	VerificationURL   string          `db:"verification_url"`
	DistributedAt     *time.Time      `db:"distributed_at"`
	CreatedAt         time.Time       `db:"created_at"`
}
