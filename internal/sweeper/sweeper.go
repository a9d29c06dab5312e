package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avolkhin/luckydraw/internal/domain"
)

// The sweeps are the correctness backstop for the fire-and-forget triggers:
// every pass is idempotent, so running them arbitrarily often is safe.

type RoundRepo interface {
	FindCompletedUndrawn(ctx context.Context, limit uint32) ([]domain.DrawRound, error)
}

type ResultRepo interface {
	FindPendingPayable(ctx context.Context, limit uint32) ([]domain.DrawResult, error)
}

type DrawProcessor interface {
	ProcessDraw(ctx context.Context, roundID int) (*domain.DrawResult, error)
}

type PrizeDistributor interface {
	DistributePrize(ctx context.Context, resultID int) error
}

var inFlight sync.Map

type Service struct {
	roundRepo   RoundRepo
	resultRepo  ResultRepo
	processor   DrawProcessor
	distributor PrizeDistributor

	limit      uint32
	interval   time.Duration
	workerPool WorkerPoolI
}

func New(
	roundRepo RoundRepo,
	resultRepo ResultRepo,
	processor DrawProcessor,
	distributor PrizeDistributor,
	interval time.Duration,
	limit uint32,
) *Service {
	return &Service{
		roundRepo:   roundRepo,
		resultRepo:  resultRepo,
		processor:   processor,
		distributor: distributor,
		limit:       limit,
		interval:    interval,
		workerPool:  NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweepUndrawnRounds(ctx)
			s.sweepPendingPrizes(ctx)
		}
	}
}

// sweepUndrawnRounds drives any COMPLETED round the purchase-time trigger
// missed (crash, restart, chain outage) to DRAWN.
func (s *Service) sweepUndrawnRounds(ctx context.Context) {
	rounds, err := s.roundRepo.FindCompletedUndrawn(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch undrawn rounds", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, round := range rounds {
		round := round
		key := roundKey(round.ID)

		if _, loaded := inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(key)
				_, err := s.processor.ProcessDraw(ctx, round.ID)
				return err
			})
			if err != nil {
				inFlight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping undrawn rounds", zap.Error(err))
	}
}

// sweepPendingPrizes retries distribution for payable prizes still PENDING.
func (s *Service) sweepPendingPrizes(ctx context.Context) {
	results, err := s.resultRepo.FindPendingPayable(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending prizes", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, result := range results {
		result := result
		key := prizeKey(result.ID)

		if _, loaded := inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(key)
				return s.distributor.DistributePrize(ctx, result.ID)
			})
			if err != nil {
				inFlight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping pending prizes", zap.Error(err))
	}
}

type sweepKey struct {
	kind string
	id   int
}

func roundKey(id int) sweepKey { return sweepKey{kind: "round", id: id} }
func prizeKey(id int) sweepKey { return sweepKey{kind: "prize", id: id} }
