package roundservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/metrics"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
)

type RoundRepo interface {
	FindOngoingByProduct(ctx context.Context, productID int) (*domain.DrawRound, error)
	FindByID(ctx context.Context, roundID int) (*domain.DrawRound, error)
	FindByIDForUpdate(ctx context.Context, roundID int) (*domain.DrawRound, error)
	Create(ctx context.Context, round *domain.DrawRound) error
	AdvanceSoldSpots(ctx context.Context, roundID, soldSpots int, completedAt *time.Time) error
	Cancel(ctx context.Context, roundID int) error
}

type ParticipationRepo interface {
	Save(ctx context.Context, participation *domain.Participation) error
	FindByRound(ctx context.Context, roundID int) ([]domain.Participation, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, productID int) (*domain.Product, error)
}

type Ledger interface {
	Debit(ctx context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error)
	Refund(ctx context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error)
}

// AdvisoryLocker gates round creation across instances. Acquisition is best
// effort: the unique (product_id, round_number) index is the real guard.
type AdvisoryLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool)
}

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrNotLuckyDraw     = errors.New("product is not a lucky draw")
	ErrInvalidSpotPrice = errors.New("spot price must be positive")
	ErrRoundUnavailable = errors.New("round unavailable")
	ErrNotEnoughSpots   = errors.New("not enough remaining spots")
)

const createLockTTL = 10 * time.Second

type Service struct {
	roundRepo         RoundRepo
	participationRepo ParticipationRepo
	productRepo       ProductRepo
	ledger            Ledger
	locker            AdvisoryLocker
	txManager         pg.TXManager
	currency          string
	// markup over prize value when sizing a round, percent
	markupPercent decimal.Decimal

	// set after construction to break the cycle with the draw engine;
	// the sweep re-drives anything a missing or failed trigger drops
	drawTrigger func(roundID int)
}

func New(
	roundRepo RoundRepo,
	participationRepo ParticipationRepo,
	productRepo ProductRepo,
	ledger Ledger,
	locker AdvisoryLocker,
	txManager pg.TXManager,
	currency string,
	markupPercent decimal.Decimal,
) *Service {
	return &Service{
		roundRepo:         roundRepo,
		participationRepo: participationRepo,
		productRepo:       productRepo,
		ledger:            ledger,
		locker:            locker,
		txManager:         txManager,
		currency:          currency,
		markupPercent:     markupPercent,
	}
}

// SetDrawTrigger installs the fire-and-forget hook invoked when a purchase
// fills a round.
func (s *Service) SetDrawTrigger(trigger func(roundID int)) {
	s.drawTrigger = trigger
}

// GetOrCreateCurrentRound returns the product's single ONGOING round,
// creating the next one if none exists.
func (s *Service) GetOrCreateCurrentRound(ctx context.Context, productID int) (*domain.DrawRound, error) {
	round, err := s.roundRepo.FindOngoingByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if round != nil {
		return round, nil
	}
	return s.CreateRound(ctx, productID)
}

// CreateRound opens the next round for a product. Capacity is derived from
// the prize value plus markup divided by the spot price, rounded up.
func (s *Service) CreateRound(ctx context.Context, productID int) (*domain.DrawRound, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.LuckyDraw {
		return nil, ErrNotLuckyDraw
	}
	if !product.SalePrice.IsPositive() {
		return nil, ErrInvalidSpotPrice
	}

	if release, ok := s.locker.Acquire(ctx, fmt.Sprintf("round:create:%d", productID), createLockTTL); ok {
		defer release()
	} else {
		// Another instance is creating; it usually lands first.
		if round, err := s.roundRepo.FindOngoingByProduct(ctx, productID); err == nil && round != nil {
			return round, nil
		}
	}

	round := &domain.DrawRound{
		ProductID:      productID,
		TotalSpots:     totalSpots(product.OriginalPrice, product.SalePrice, s.markupPercent),
		PricePerSpot:   product.SalePrice,
		PrizeValue:     product.OriginalPrice,
		AutoCreateNext: product.AutoCreateNext,
	}
	if err := s.roundRepo.Create(ctx, round); err != nil {
		if pg.IsUniqueViolation(err) {
			// Lost the create race; the winner's round is the current one.
			existing, findErr := s.roundRepo.FindOngoingByProduct(ctx, productID)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}
	zap.L().Info("round created",
		zap.Int("productID", productID),
		zap.Int("roundID", round.ID),
		zap.Int("roundNumber", round.RoundNumber),
		zap.Int("totalSpots", round.TotalSpots))
	return round, nil
}

// PurchaseSpots sells a contiguous range of spots and debits the buyer in one
// transaction. If the purchase fills the round, the COMPLETED transition and
// the async draw trigger happen here; the sweep backstops the trigger.
func (s *Service) PurchaseSpots(ctx context.Context, userID int64, productID, quantity int) (*domain.Participation, error) {
	start := time.Now()
	result := "fail"
	defer func() { metrics.RecordPurchase(result, start) }()

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	round, err := s.GetOrCreateCurrentRound(ctx, productID)
	if err != nil {
		return nil, err
	}

	orderNumber, err := generateOrderNumber(userID)
	if err != nil {
		return nil, err
	}
	participation := &domain.Participation{
		DrawRoundID: round.ID,
		UserID:      userID,
		Quantity:    quantity,
		OrderNumber: orderNumber,
	}
	var completed bool

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Re-read under the row lock: the round may have filled or closed
		// between the unlocked read above and here.
		locked, err := s.roundRepo.FindByIDForUpdate(ctx, round.ID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Status != domain.RoundOngoing {
			return ErrRoundUnavailable
		}
		if locked.Remaining() < quantity {
			return ErrNotEnoughSpots
		}

		participation.StartNumber = locked.SoldSpots + 1
		participation.EndNumber = locked.SoldSpots + quantity
		participation.TotalAmount = locked.PricePerSpot.Mul(decimal.NewFromInt(int64(quantity)))

		if err := s.participationRepo.Save(ctx, participation); err != nil {
			return err
		}

		var completedAt *time.Time
		if participation.EndNumber == locked.TotalSpots {
			now := time.Now()
			completedAt = &now
			completed = true
		}
		if err := s.roundRepo.AdvanceSoldSpots(ctx, locked.ID, participation.EndNumber, completedAt); err != nil {
			return err
		}

		_, err = s.ledger.Debit(ctx, ledgerservice.Request{
			UserID:      userID,
			Currency:    s.currency,
			Amount:      participation.TotalAmount,
			ReferenceID: "purchase:" + participation.OrderNumber,
			Metadata: map[string]any{
				"draw_round_id": locked.ID,
				"product_id":    locked.ProductID,
				"order_number":  participation.OrderNumber,
				"start_number":  participation.StartNumber,
				"end_number":    participation.EndNumber,
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	result = "success"
	zap.L().Info("spots purchased",
		zap.Int64("userID", userID),
		zap.Int("roundID", round.ID),
		zap.Int("startNumber", participation.StartNumber),
		zap.Int("endNumber", participation.EndNumber))

	if completed {
		zap.L().Info("round completed", zap.Int("roundID", round.ID))
		if s.drawTrigger != nil {
			go s.drawTrigger(round.ID)
		}
	}
	return participation, nil
}

// GetRoundDetail returns a round with its participations.
func (s *Service) GetRoundDetail(ctx context.Context, roundID int) (*domain.DrawRound, []domain.Participation, error) {
	round, err := s.roundRepo.FindByID(ctx, roundID)
	if err != nil {
		return nil, nil, err
	}
	if round == nil {
		return nil, nil, ErrRoundUnavailable
	}
	participations, err := s.participationRepo.FindByRound(ctx, roundID)
	if err != nil {
		return nil, nil, err
	}
	return round, participations, nil
}

// CancelRound administratively closes a round that has not been drawn and
// refunds every participation. The refund referenceIds make a re-run of a
// half-cancelled round safe.
func (s *Service) CancelRound(ctx context.Context, roundID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.roundRepo.FindByIDForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if locked == nil || (locked.Status != domain.RoundOngoing && locked.Status != domain.RoundCompleted) {
			return ErrRoundUnavailable
		}

		participations, err := s.participationRepo.FindByRound(ctx, roundID)
		if err != nil {
			return err
		}
		for _, p := range participations {
			if _, err := s.ledger.Refund(ctx, ledgerservice.Request{
				UserID:      p.UserID,
				Currency:    s.currency,
				Amount:      p.TotalAmount,
				ReferenceID: "refund:" + p.OrderNumber,
				Metadata: map[string]any{
					"draw_round_id": roundID,
					"order_number":  p.OrderNumber,
				},
			}); err != nil {
				return err
			}
		}
		return s.roundRepo.Cancel(ctx, roundID)
	})
}

// totalSpots = ceil(prizeValue * (1 + markup%) / pricePerSpot).
func totalSpots(prizeValue, pricePerSpot, markupPercent decimal.Decimal) int {
	markup := decimal.NewFromInt(1).Add(markupPercent.Div(decimal.NewFromInt(100)))
	return int(prizeValue.Mul(markup).Div(pricePerSpot).Ceil().IntPart())
}

// generateOrderNumber builds a readable unique order number:
// LD{YYYYMMDDHHmmss}{userID mod 10000}{3 random hex digits}.
func generateOrderNumber(userID int64) (string, error) {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't read random bytes: %w", err)
	}
	return fmt.Sprintf("LD%s%04d%s",
		time.Now().Format("20060102150405"),
		userID%10000,
		strings.ToUpper(hex.EncodeToString(buf))[:3]), nil
}
