package prizeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/metrics"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
)

type ResultRepo interface {
	FindByIDForUpdate(ctx context.Context, resultID int) (*domain.DrawResult, error)
	UpdatePrizeStatus(ctx context.Context, resultID int, status domain.PrizeStatus, distributedAt *time.Time) error
	UpdatePrizeType(ctx context.Context, resultID int, prizeType domain.PrizeType) error
}

type Ledger interface {
	Credit(ctx context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error)
}

var (
	ErrResultNotFound   = errors.New("draw result not found")
	ErrNotPhysicalPrize = errors.New("prize is not physical")
	ErrAlreadyHandled   = errors.New("prize already distributed or cancelled")
)

type Service struct {
	resultRepo ResultRepo
	ledger     Ledger
	txManager  pg.TXManager
	currency   string
}

func New(resultRepo ResultRepo, ledger Ledger, txManager pg.TXManager, currency string) *Service {
	return &Service{
		resultRepo: resultRepo,
		ledger:     ledger,
		txManager:  txManager,
		currency:   currency,
	}
}

// DistributePrize pays out a drawn prize. Cash and crypto prizes credit the
// winner's ledger; physical prizes stay PENDING for manual fulfillment. The
// PENDING re-check runs under the result row lock, in the same transaction as
// the credit, so a concurrent distribution cannot pay twice. The credit's
// round-derived referenceId makes the money movement idempotent regardless.
func (s *Service) DistributePrize(ctx context.Context, resultID int) error {
	start := time.Now()
	outcome := "fail"
	defer func() { metrics.RecordPrize(outcome, start) }()

	var skipped bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		result, err := s.resultRepo.FindByIDForUpdate(ctx, resultID)
		if err != nil {
			return err
		}
		if result == nil {
			return ErrResultNotFound
		}
		if result.PrizeStatus != domain.PrizePending {
			skipped = true
			return nil
		}
		if result.PrizeType == domain.PrizePhysical {
			skipped = true
			return nil
		}

		if err := s.credit(ctx, result); err != nil {
			return err
		}
		now := time.Now()
		return s.resultRepo.UpdatePrizeStatus(ctx, resultID, domain.PrizeDistributed, &now)
	})
	if err != nil {
		zap.L().Error("prize distribution failed", zap.Int("resultID", resultID), zap.Error(err))
		return err
	}
	if skipped {
		outcome = "skipped"
		return nil
	}

	outcome = "success"
	zap.L().Info("prize distributed", zap.Int("resultID", resultID))
	return nil
}

// ConvertPhysicalPrizeToCashPrize swaps an undistributed physical prize for
// its cash value. The PENDING re-check and the credit share one transaction,
// preventing double payment when invoked concurrently with fulfillment.
func (s *Service) ConvertPhysicalPrizeToCashPrize(ctx context.Context, resultID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		result, err := s.resultRepo.FindByIDForUpdate(ctx, resultID)
		if err != nil {
			return err
		}
		if result == nil {
			return ErrResultNotFound
		}
		if result.PrizeType != domain.PrizePhysical {
			return ErrNotPhysicalPrize
		}
		if result.PrizeStatus != domain.PrizePending {
			return ErrAlreadyHandled
		}

		if err := s.resultRepo.UpdatePrizeType(ctx, resultID, domain.PrizeCash); err != nil {
			return err
		}
		result.PrizeType = domain.PrizeCash
		if err := s.credit(ctx, result); err != nil {
			return err
		}
		now := time.Now()
		if err := s.resultRepo.UpdatePrizeStatus(ctx, resultID, domain.PrizeDistributed, &now); err != nil {
			return err
		}
		zap.L().Info("physical prize converted to cash",
			zap.Int("resultID", resultID),
			zap.Int64("winnerUserID", result.WinnerUserID))
		return nil
	})
}

func (s *Service) credit(ctx context.Context, result *domain.DrawResult) error {
	_, err := s.ledger.Credit(ctx, ledgerservice.Request{
		UserID:      result.WinnerUserID,
		Currency:    s.currency,
		Amount:      result.PrizeValue,
		ReferenceID: fmt.Sprintf("prize:round:%d", result.DrawRoundID),
		Metadata: map[string]any{
			"draw_round_id":  result.DrawRoundID,
			"winning_number": result.WinningNumber,
			"prize_type":     string(result.PrizeType),
		},
	})
	return err
}
