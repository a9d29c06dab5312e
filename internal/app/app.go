package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/chain"
	"github.com/avolkhin/luckydraw/internal/config"
	"github.com/avolkhin/luckydraw/internal/handlers"
	"github.com/avolkhin/luckydraw/internal/locker"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/repo"
	"github.com/avolkhin/luckydraw/internal/service"
	"github.com/avolkhin/luckydraw/internal/service/roundservice"
	"github.com/avolkhin/luckydraw/internal/sweeper"
	"github.com/avolkhin/luckydraw/pkg/clients"
	"github.com/avolkhin/luckydraw/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *sweeper.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	provider := chain.NewClient(cfg.ChainAddress, clients.NewHTTPClient())

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, provider, buildLocker(ctx, cfg), cfg)
	a.api = handlers.New(a.srv, a.repo.ResultRepo, cfg)
	a.sweeper = sweeper.New(
		a.repo.RoundRepo,
		a.repo.ResultRepo,
		a.srv.DrawService,
		a.srv.PrizeService,
		cfg.SweepInterval,
		cfg.SweepBatchLimit,
	)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildLocker returns the redis advisory locker when an address is
// configured, otherwise the no-op one. The database unique constraints stay
// authoritative either way.
func buildLocker(ctx context.Context, cfg *config.Config) roundservice.AdvisoryLocker {
	if cfg.RedisAddress == "" {
		return locker.NoopLocker{}
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, round creation runs without advisory locks", zap.Error(err))
		return locker.NoopLocker{}
	}
	return locker.NewRedisLocker(client)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Start(ctx)
		<-ctx.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
