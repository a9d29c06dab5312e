package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/chain"
	"github.com/avolkhin/luckydraw/internal/config"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/repo"
	"github.com/avolkhin/luckydraw/internal/service/drawservice"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
	"github.com/avolkhin/luckydraw/internal/service/prizeservice"
	"github.com/avolkhin/luckydraw/internal/service/roundservice"
)

const triggerTimeout = 30 * time.Second

type Services struct {
	LedgerService *ledgerservice.Service
	RoundService  *roundservice.Service
	DrawService   *drawservice.Service
	PrizeService  *prizeservice.Service
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	provider chain.Provider,
	locker roundservice.AdvisoryLocker,
	cfg *config.Config,
) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.LedgerRepo, txManager,
		ledgerservice.WithDepositBonusPercent(decimal.NewFromInt(int64(cfg.DepositBonus))))
	roundService := roundservice.New(
		repo.RoundRepo,
		repo.ParticipationRepo,
		repo.ProductRepo,
		ledgerService,
		locker,
		txManager,
		cfg.Currency,
		decimal.NewFromInt(int64(cfg.MarkupPercent)),
	)
	drawService := drawservice.New(
		repo.RoundRepo,
		repo.ParticipationRepo,
		repo.ResultRepo,
		repo.ProductRepo,
		provider,
		txManager,
		cfg.BlockInterval,
		cfg.ChainExplorer,
	)
	prizeService := prizeservice.New(repo.ResultRepo, ledgerService, txManager, cfg.Currency)

	// The draw engine, round manager and prize coordinator reference each
	// other at runtime; the hooks are installed after construction.
	drawService.SetRoundCreator(roundService)
	drawService.SetPrizeDistributor(prizeService)
	roundService.SetDrawTrigger(func(roundID int) {
		ctx, cancel := context.WithTimeout(context.Background(), triggerTimeout)
		defer cancel()
		if _, err := drawService.ProcessDraw(ctx, roundID); err != nil {
			zap.L().Warn("Purchase-time draw trigger failed, sweep will retry",
				zap.Int("roundID", roundID), zap.Error(err))
		}
	})

	return &Services{
		LedgerService: ledgerService,
		RoundService:  roundService,
		DrawService:   drawService,
		PrizeService:  prizeService,
	}
}
