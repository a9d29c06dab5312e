package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/avolkhin/luckydraw/internal/domain"
)

type mocks struct {
	roundRepo   *MockRoundRepo
	resultRepo  *MockResultRepo
	processor   *MockDrawProcessor
	distributor *MockPrizeDistributor
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		roundRepo:   NewMockRoundRepo(ctrl),
		resultRepo:  NewMockResultRepo(ctrl),
		processor:   NewMockDrawProcessor(ctrl),
		distributor: NewMockPrizeDistributor(ctrl),
	}
	service := New(m.roundRepo, m.resultRepo, m.processor, m.distributor, time.Minute, 100)
	return service, m
}

func TestSweepUndrawnRounds(t *testing.T) {
	t.Run("Draws every completed round in the batch", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		rounds := []domain.DrawRound{{ID: 1}, {ID: 2}}
		m.roundRepo.EXPECT().FindCompletedUndrawn(ctx, uint32(100)).Return(rounds, nil)

		var wg sync.WaitGroup
		wg.Add(2)
		m.processor.EXPECT().ProcessDraw(ctx, 1).DoAndReturn(func(context.Context, int) (*domain.DrawResult, error) {
			defer wg.Done()
			return &domain.DrawResult{ID: 1}, nil
		})
		m.processor.EXPECT().ProcessDraw(ctx, 2).DoAndReturn(func(context.Context, int) (*domain.DrawResult, error) {
			defer wg.Done()
			return &domain.DrawResult{ID: 2}, nil
		})

		service.sweepUndrawnRounds(ctx)
		wg.Wait()
	})

	t.Run("A round already in flight is skipped", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		key := roundKey(3)
		inFlight.Store(key, struct{}{})
		defer inFlight.Delete(key)

		m.roundRepo.EXPECT().FindCompletedUndrawn(ctx, uint32(100)).
			Return([]domain.DrawRound{{ID: 3}}, nil)

		service.sweepUndrawnRounds(ctx)
	})

	t.Run("Fetch failure aborts the pass", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		m.roundRepo.EXPECT().FindCompletedUndrawn(ctx, uint32(100)).
			Return(nil, errors.New("db down"))

		service.sweepUndrawnRounds(ctx)
	})

	t.Run("A failed draw releases the in-flight slot", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		m.roundRepo.EXPECT().FindCompletedUndrawn(ctx, uint32(100)).
			Return([]domain.DrawRound{{ID: 4}}, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		m.processor.EXPECT().ProcessDraw(ctx, 4).DoAndReturn(func(context.Context, int) (*domain.DrawResult, error) {
			defer wg.Done()
			return nil, errors.New("chain unavailable")
		})

		service.sweepUndrawnRounds(ctx)
		wg.Wait()

		assert.Eventually(t, func() bool {
			_, loaded := inFlight.Load(roundKey(4))
			return !loaded
		}, time.Second, 10*time.Millisecond)
	})
}

func TestSweepPendingPrizes(t *testing.T) {
	t.Run("Retries distribution for payable prizes", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		m.resultRepo.EXPECT().FindPendingPayable(ctx, uint32(100)).
			Return([]domain.DrawResult{{ID: 9}}, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		m.distributor.EXPECT().DistributePrize(ctx, 9).DoAndReturn(func(context.Context, int) error {
			defer wg.Done()
			return nil
		})

		service.sweepPendingPrizes(ctx)
		wg.Wait()
	})

	t.Run("Round and prize keys do not collide", func(t *testing.T) {
		service, m := NewMock(t)
		ctx := context.Background()

		inFlight.Store(roundKey(9), struct{}{})
		defer inFlight.Delete(roundKey(9))

		m.resultRepo.EXPECT().FindPendingPayable(ctx, uint32(100)).
			Return([]domain.DrawResult{{ID: 9}}, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		m.distributor.EXPECT().DistributePrize(ctx, 9).DoAndReturn(func(context.Context, int) error {
			defer wg.Done()
			return nil
		})

		service.sweepPendingPrizes(ctx)
		wg.Wait()
	})
}

func TestWorkerPool(t *testing.T) {
	t.Run("Runs queued tasks", func(t *testing.T) {
		wp := NewWorkerPool(2)

		var wg sync.WaitGroup
		wg.Add(5)
		for i := 0; i < 5; i++ {
			err := wp.AddTask(context.Background(), func() error {
				defer wg.Done()
				return nil
			})
			assert.NoError(t, err)
		}
		wg.Wait()
	})

	t.Run("Rejects tasks after cancellation", func(t *testing.T) {
		wp := NewWorkerPool(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		block := make(chan struct{})
		defer close(block)
		blocked := func() error {
			<-block
			return nil
		}
		// One occupies the worker, one fills the buffer.
		_ = wp.AddTask(context.Background(), blocked)
		_ = wp.AddTask(context.Background(), blocked)

		err := wp.AddTask(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
