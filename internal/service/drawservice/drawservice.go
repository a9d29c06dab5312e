package drawservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/chain"
	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/metrics"
	"github.com/avolkhin/luckydraw/internal/pg"
)

type RoundRepo interface {
	FindByIDForUpdate(ctx context.Context, roundID int) (*domain.DrawRound, error)
	MarkDrawn(ctx context.Context, roundID int, drawnAt time.Time) error
}

type ParticipationRepo interface {
	FindByRound(ctx context.Context, roundID int) ([]domain.Participation, error)
	FindByNumber(ctx context.Context, roundID, number int) (*domain.Participation, error)
}

type ResultRepo interface {
	Save(ctx context.Context, result *domain.DrawResult) error
	FindByRoundID(ctx context.Context, roundID int) (*domain.DrawResult, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, productID int) (*domain.Product, error)
}

// RoundCreator opens the next round after a drawn round with autoCreateNext.
type RoundCreator interface {
	CreateRound(ctx context.Context, productID int) (*domain.DrawRound, error)
}

// PrizeDistributor is notified after a result is persisted; best effort, the
// pending-prize sweep retries anything it drops.
type PrizeDistributor interface {
	DistributePrize(ctx context.Context, resultID int) error
}

var (
	ErrRoundNotFound    = errors.New("round not found")
	ErrRoundNotComplete = errors.New("round is not completed")
	ErrNoParticipations = errors.New("round has no participations")
	ErrNoHashDigits     = errors.New("block hash contains no digits")
)

// extraBlockDistance is added on top of the timestamp-derived distance so the
// target block always lies behind the completion-time estimate.
const extraBlockDistance = 6

type Service struct {
	roundRepo         RoundRepo
	participationRepo ParticipationRepo
	resultRepo        ResultRepo
	productRepo       ProductRepo
	provider          chain.Provider
	txManager         pg.TXManager

	blockInterval  time.Duration
	explorerURLFmt string

	roundCreator RoundCreator
	distributor  PrizeDistributor
}

func New(
	roundRepo RoundRepo,
	participationRepo ParticipationRepo,
	resultRepo ResultRepo,
	productRepo ProductRepo,
	provider chain.Provider,
	txManager pg.TXManager,
	blockInterval time.Duration,
	explorerURLFmt string,
) *Service {
	return &Service{
		roundRepo:         roundRepo,
		participationRepo: participationRepo,
		resultRepo:        resultRepo,
		productRepo:       productRepo,
		provider:          provider,
		txManager:         txManager,
		blockInterval:     blockInterval,
		explorerURLFmt:    explorerURLFmt,
	}
}

// SetRoundCreator installs the next-round hook (wired late to avoid a
// construction cycle with the round manager).
func (s *Service) SetRoundCreator(creator RoundCreator) {
	s.roundCreator = creator
}

// SetPrizeDistributor installs the post-draw payout hook.
func (s *Service) SetPrizeDistributor(distributor PrizeDistributor) {
	s.distributor = distributor
}

// ProcessDraw selects and persists the winner for a completed round. It is
// idempotent: the purchase trigger, the periodic sweep and manual admin calls
// can all invoke it, and every call after the first returns the stored result.
func (s *Service) ProcessDraw(ctx context.Context, roundID int) (*domain.DrawResult, error) {
	start := time.Now()
	outcome := "fail"
	defer func() { metrics.RecordDraw(outcome, start) }()

	existing, err := s.resultRepo.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		outcome = "already_drawn"
		return existing, nil
	}

	var result *domain.DrawResult
	var productID int
	var autoCreateNext bool

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		round, err := s.roundRepo.FindByIDForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if round == nil {
			return ErrRoundNotFound
		}
		if round.Status == domain.RoundDrawn {
			// Lost the race to a concurrent draw; surface its result below.
			return nil
		}
		if round.Status != domain.RoundCompleted || round.CompletedAt == nil {
			return ErrRoundNotComplete
		}
		productID = round.ProductID
		autoCreateNext = round.AutoCreateNext

		participations, err := s.participationRepo.FindByRound(ctx, roundID)
		if err != nil {
			return err
		}
		if len(participations) == 0 {
			zap.L().Error("completed round has no participations", zap.Int("roundID", roundID))
			return ErrNoParticipations
		}

		derivation, err := s.derive(ctx, round, participations)
		if err != nil {
			return err
		}

		winner, err := s.participationRepo.FindByNumber(ctx, roundID, derivation.winningNumber)
		if err != nil {
			return err
		}
		if winner == nil {
			// Ranges tile [1, totalSpots]; an uncovered number means corrupt data.
			zap.L().Error("winning number not covered by any participation",
				zap.Int("roundID", roundID), zap.Int("winningNumber", derivation.winningNumber))
			return fmt.Errorf("no participation owns number %d in round %d", derivation.winningNumber, roundID)
		}

		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		prizeType := domain.PrizePhysical
		if product != nil {
			prizeType = product.PrizeType
		}

		result = &domain.DrawResult{
			DrawRoundID:       roundID,
			WinningNumber:     derivation.winningNumber,
			WinnerUserID:      winner.UserID,
			PrizeType:         prizeType,
			PrizeValue:        round.PrizeValue,
			PrizeStatus:       domain.PrizePending,
			TimestampSum:      derivation.timestampSum,
			BlockDistance:     derivation.blockDistance,
			TargetBlockHeight: derivation.block.Height,
			TargetBlockHash:   derivation.block.Hash,
			HashLast6Digits:   derivation.hashLast6,
			CompletionTime:    *round.CompletedAt,
			BlockTime:         derivation.block.Time,
			VerificationURL:   fmt.Sprintf(s.explorerURLFmt, derivation.block.Height),
		}
		if err := s.resultRepo.Save(ctx, result); err != nil {
			return err
		}
		return s.roundRepo.MarkDrawn(ctx, roundID, time.Now())
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			// A concurrent draw persisted first; its result is the valid one.
			if stored, findErr := s.resultRepo.FindByRoundID(ctx, roundID); findErr == nil && stored != nil {
				outcome = "already_drawn"
				return stored, nil
			}
		}
		zap.L().Error("draw processing failed", zap.Int("roundID", roundID), zap.Error(err))
		return nil, err
	}
	if result == nil {
		// Round was already DRAWN when we locked it.
		stored, err := s.resultRepo.FindByRoundID(ctx, roundID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, fmt.Errorf("round %d is drawn but has no result", roundID)
		}
		outcome = "already_drawn"
		return stored, nil
	}

	outcome = "success"
	zap.L().Info("round drawn",
		zap.Int("roundID", roundID),
		zap.Int("winningNumber", result.WinningNumber),
		zap.Int64("winnerUserID", result.WinnerUserID),
		zap.Int64("targetBlockHeight", result.TargetBlockHeight))

	if s.distributor != nil {
		go func(resultID int) {
			distCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.distributor.DistributePrize(distCtx, resultID); err != nil {
				zap.L().Warn("async prize distribution failed, sweep will retry",
					zap.Int("resultID", resultID), zap.Error(err))
			}
		}(result.ID)
	}
	if autoCreateNext && s.roundCreator != nil {
		go func() {
			createCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := s.roundCreator.CreateRound(createCtx, productID); err != nil {
				zap.L().Warn("failed to auto-create next round",
					zap.Int("productID", productID), zap.Error(err))
			}
		}()
	}
	return result, nil
}

type derivation struct {
	timestampSum  int64
	blockDistance int
	block         *chain.Block
	hashLast6     string
	winningNumber int
}

// derive computes the winning number from purchase timing and chain data.
// Every intermediate value is kept so the outcome is publicly verifiable:
// given the same timestamp sum, block height and block hash, the result is
// always identical.
func (s *Service) derive(ctx context.Context, round *domain.DrawRound, participations []domain.Participation) (*derivation, error) {
	var timestampSum int64
	for _, p := range participations {
		timestampSum += p.CreatedAt.Unix()
	}
	blockDistance := int(timestampSum%100) + extraBlockDistance

	latest, err := s.provider.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block height: %w", err)
	}

	elapsedBlocks := int64(time.Since(*round.CompletedAt) / s.blockInterval)
	target := latest - elapsedBlocks - int64(blockDistance)
	if target < 1 {
		target = 1
	}

	block, err := s.provider.BlockByHeight(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to get block %d: %w", target, err)
	}

	last6, err := hashDigitTail(block.Hash, 6)
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseInt(last6, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hash digits %q: %w", last6, err)
	}

	return &derivation{
		timestampSum:  timestampSum,
		blockDistance: blockDistance,
		block:         block,
		hashLast6:     last6,
		winningNumber: int(value%int64(round.TotalSpots)) + 1,
	}, nil
}

// hashDigitTail extracts the numeric characters of a block hash and returns
// the last n of them (fewer if the hash carries fewer digits).
func hashDigitTail(hash string, n int) (string, error) {
	var digits []rune
	for _, r := range hash {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return "", ErrNoHashDigits
	}
	if len(digits) > n {
		digits = digits[len(digits)-n:]
	}
	return string(digits), nil
}
