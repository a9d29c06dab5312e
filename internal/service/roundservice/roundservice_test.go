package roundservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
)

type mocks struct {
	roundRepo         *MockRoundRepo
	participationRepo *MockParticipationRepo
	productRepo       *MockProductRepo
	ledger            *MockLedger
	locker            *MockAdvisoryLocker
	txManager         *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		roundRepo:         NewMockRoundRepo(ctrl),
		participationRepo: NewMockParticipationRepo(ctrl),
		productRepo:       NewMockProductRepo(ctrl),
		ledger:            NewMockLedger(ctrl),
		locker:            NewMockAdvisoryLocker(ctrl),
		txManager:         pg.NewMockTXManager(ctrl),
	}
	service := New(m.roundRepo, m.participationRepo, m.productRepo, m.ledger,
		m.locker, m.txManager, "USDT", decimal.NewFromInt(10))
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestTotalSpots(t *testing.T) {
	tests := []struct {
		name       string
		prizeValue string
		spotPrice  string
		markup     string
		expected   int
	}{
		{"Even division", "1000", "10", "10", 110},
		{"Rounds up", "1000", "30", "10", 37},
		{"Zero markup", "1000", "10", "0", 100},
		{"Fractional spot price", "99.99", "2.50", "10", 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totalSpots(
				decimal.RequireFromString(tt.prizeValue),
				decimal.RequireFromString(tt.spotPrice),
				decimal.RequireFromString(tt.markup),
			)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetOrCreateCurrentRound(t *testing.T) {
	t.Run("Returns the existing ongoing round", func(t *testing.T) {
		service, m := NewMock(t)
		existing := &domain.DrawRound{ID: 42, Status: domain.RoundOngoing}
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(existing, nil)

		round, err := service.GetOrCreateCurrentRound(context.Background(), 7)
		assert.NoError(t, err)
		assert.Same(t, existing, round)
	})

	t.Run("Creates a sized round when none is ongoing", func(t *testing.T) {
		service, m := NewMock(t)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(nil, nil)
		m.productRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Product{
			ID:            7,
			LuckyDraw:     true,
			SalePrice:     decimal.NewFromInt(10),
			OriginalPrice: decimal.NewFromInt(1000),
		}, nil)
		m.locker.EXPECT().Acquire(gomock.Any(), "round:create:7", gomock.Any()).Return(func() {}, true)
		m.roundRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, round *domain.DrawRound) error {
				assert.Equal(t, 110, round.TotalSpots)
				assert.True(t, round.PricePerSpot.Equal(decimal.NewFromInt(10)))
				assert.True(t, round.PrizeValue.Equal(decimal.NewFromInt(1000)))
				round.ID = 42
				round.RoundNumber = 3
				return nil
			})

		round, err := service.GetOrCreateCurrentRound(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 42, round.ID)
	})

	t.Run("Rejects a non-lucky-draw product", func(t *testing.T) {
		service, m := NewMock(t)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(nil, nil)
		m.productRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Product{ID: 7}, nil)

		_, err := service.GetOrCreateCurrentRound(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNotLuckyDraw)
	})

	t.Run("Rejects a zero spot price before sizing", func(t *testing.T) {
		service, m := NewMock(t)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(nil, nil)
		m.productRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Product{
			ID:            7,
			LuckyDraw:     true,
			SalePrice:     decimal.Zero,
			OriginalPrice: decimal.NewFromInt(1000),
		}, nil)

		_, err := service.GetOrCreateCurrentRound(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidSpotPrice)
	})

	t.Run("Losing the create race returns the winner's round", func(t *testing.T) {
		service, m := NewMock(t)
		winner := &domain.DrawRound{ID: 43, Status: domain.RoundOngoing}
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(nil, nil)
		m.productRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Product{
			ID:            7,
			LuckyDraw:     true,
			SalePrice:     decimal.NewFromInt(10),
			OriginalPrice: decimal.NewFromInt(1000),
		}, nil)
		m.locker.EXPECT().Acquire(gomock.Any(), "round:create:7", gomock.Any()).Return(func() {}, true)
		m.roundRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(winner, nil)

		round, err := service.GetOrCreateCurrentRound(context.Background(), 7)
		assert.NoError(t, err)
		assert.Same(t, winner, round)
	})
}

func TestPurchaseSpots(t *testing.T) {
	round := func(sold int) *domain.DrawRound {
		return &domain.DrawRound{
			ID:           42,
			ProductID:    7,
			TotalSpots:   110,
			SoldSpots:    sold,
			PricePerSpot: decimal.NewFromInt(10),
			Status:       domain.RoundOngoing,
		}
	}

	t.Run("Allocates the next contiguous range and debits", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(round(60), nil)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(round(60), nil)
		m.participationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Participation) error {
				assert.Equal(t, 61, p.StartNumber)
				assert.Equal(t, 65, p.EndNumber)
				assert.True(t, p.TotalAmount.Equal(decimal.NewFromInt(50)))
				return nil
			})
		m.roundRepo.EXPECT().AdvanceSoldSpots(gomock.Any(), 42, 65, nil).Return(nil)
		m.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error) {
				assert.Equal(t, int64(100), req.UserID)
				assert.True(t, req.Amount.Equal(decimal.NewFromInt(50)))
				assert.True(t, strings.HasPrefix(req.ReferenceID, "purchase:LD"))
				return &domain.LedgerEntry{}, nil
			})

		p, err := service.PurchaseSpots(context.Background(), 100, 7, 5)
		assert.NoError(t, err)
		assert.Equal(t, 61, p.StartNumber)
		assert.Equal(t, 65, p.EndNumber)
	})

	t.Run("Filling purchase completes the round and fires the trigger", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(round(105), nil)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(round(105), nil)
		m.participationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.roundRepo.EXPECT().AdvanceSoldSpots(gomock.Any(), 42, 110, gomock.Not(gomock.Nil())).Return(nil)
		m.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{}, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		triggered := make(chan int, 1)
		service.SetDrawTrigger(func(roundID int) {
			triggered <- roundID
			wg.Done()
		})

		p, err := service.PurchaseSpots(context.Background(), 100, 7, 5)
		assert.NoError(t, err)
		assert.Equal(t, 110, p.EndNumber)
		wg.Wait()
		assert.Equal(t, 42, <-triggered)
	})

	t.Run("Rejects when remaining is short instead of capping", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(round(108), nil)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(round(108), nil)

		_, err := service.PurchaseSpots(context.Background(), 100, 7, 5)
		assert.ErrorIs(t, err, ErrNotEnoughSpots)
	})

	t.Run("Rejects when the round closed between reads", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		completed := round(110)
		completed.Status = domain.RoundCompleted
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(round(105), nil)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(completed, nil)

		_, err := service.PurchaseSpots(context.Background(), 100, 7, 5)
		assert.ErrorIs(t, err, ErrRoundUnavailable)
	})

	t.Run("Rejects a non-positive quantity", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.PurchaseSpots(context.Background(), 100, 7, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Ledger rejection rolls the allocation back", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindOngoingByProduct(gomock.Any(), 7).Return(round(60), nil)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(round(60), nil)
		m.participationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.roundRepo.EXPECT().AdvanceSoldSpots(gomock.Any(), 42, 65, nil).Return(nil)
		m.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(nil, ledgerservice.ErrInsufficientBalance)

		_, err := service.PurchaseSpots(context.Background(), 100, 7, 5)
		assert.ErrorIs(t, err, ledgerservice.ErrInsufficientBalance)
	})
}

func TestCancelRound(t *testing.T) {
	t.Run("Refunds every participation then cancels", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(&domain.DrawRound{
			ID:     42,
			Status: domain.RoundOngoing,
		}, nil)
		m.participationRepo.EXPECT().FindByRound(gomock.Any(), 42).Return([]domain.Participation{
			{UserID: 100, OrderNumber: "LD1", TotalAmount: decimal.NewFromInt(50)},
			{UserID: 200, OrderNumber: "LD2", TotalAmount: decimal.NewFromInt(30)},
		}, nil)
		gomock.InOrder(
			m.ledger.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error) {
					assert.Equal(t, int64(100), req.UserID)
					assert.Equal(t, "refund:LD1", req.ReferenceID)
					assert.True(t, req.Amount.Equal(decimal.NewFromInt(50)))
					return &domain.LedgerEntry{}, nil
				}),
			m.ledger.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error) {
					assert.Equal(t, "refund:LD2", req.ReferenceID)
					return &domain.LedgerEntry{}, nil
				}),
		)
		m.roundRepo.EXPECT().Cancel(gomock.Any(), 42).Return(nil)

		assert.NoError(t, service.CancelRound(context.Background(), 42))
	})

	t.Run("Drawn rounds cannot be cancelled", func(t *testing.T) {
		service, m := NewMock(t)
		passThroughTx(m.txManager)
		m.roundRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 42).Return(&domain.DrawRound{
			ID:     42,
			Status: domain.RoundDrawn,
		}, nil)

		err := service.CancelRound(context.Background(), 42)
		assert.ErrorIs(t, err, ErrRoundUnavailable)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	n1, err := generateOrderNumber(100)
	assert.NoError(t, err)
	n2, err := generateOrderNumber(100)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(n1, "LD"))
	assert.Len(t, n1, 2+14+4+3)
	assert.NotEqual(t, n1, n2)
}

func TestGetRoundDetail(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Unknown round", func(t *testing.T) {
		m.roundRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
		_, _, err := service.GetRoundDetail(context.Background(), 99)
		assert.ErrorIs(t, err, ErrRoundUnavailable)
	})

	t.Run("Round with participations", func(t *testing.T) {
		now := time.Now()
		m.roundRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.DrawRound{ID: 42, CreatedAt: now}, nil)
		m.participationRepo.EXPECT().FindByRound(gomock.Any(), 42).Return([]domain.Participation{
			{StartNumber: 1, EndNumber: 5},
		}, nil)
		round, participations, err := service.GetRoundDetail(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, 42, round.ID)
		assert.Len(t, participations, 1)
	})

	t.Run("Repo error", func(t *testing.T) {
		m.roundRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, errors.New("db error"))
		_, _, err := service.GetRoundDetail(context.Background(), 42)
		assert.Error(t, err)
	})
}
