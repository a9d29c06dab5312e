package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avolkhin/luckydraw/internal/config"
	balancehandlers "github.com/avolkhin/luckydraw/internal/handlers/balance"
	drawshandlers "github.com/avolkhin/luckydraw/internal/handlers/draws"
	"github.com/avolkhin/luckydraw/internal/service"
)

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type DrawsHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetCurrentRound(w http.ResponseWriter, r *http.Request)
	GetRoundDetail(w http.ResponseWriter, r *http.Request)
	ForceProcessDraw(w http.ResponseWriter, r *http.Request)
	ConvertPrize(w http.ResponseWriter, r *http.Request)
	CancelRound(w http.ResponseWriter, r *http.Request)
}

type ResultReader = drawshandlers.ResultReader

type Handlers struct {
	BalanceHandler BalanceHandler
	DrawsHandler   DrawsHandler
}

func New(s *service.Services, results ResultReader, cfg *config.Config) *Handlers {
	return &Handlers{
		BalanceHandler: balancehandlers.New(s.LedgerService, cfg.Currency),
		DrawsHandler:   drawshandlers.New(s.RoundService, s.DrawService, s.PrizeService, results),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/balance", func(r chi.Router) {
			r.Get("/", h.BalanceHandler.GetBalance)
			r.Post("/deposit", h.BalanceHandler.Deposit)
			r.Post("/withdraw", h.BalanceHandler.Withdraw)
			r.Get("/history", h.BalanceHandler.GetHistory)
		})
		r.Route("/draws/{productID}", func(r chi.Router) {
			r.Get("/current", h.DrawsHandler.GetCurrentRound)
			r.Post("/purchase", h.DrawsHandler.Purchase)
		})
		r.Get("/rounds/{roundID}", h.DrawsHandler.GetRoundDetail)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/rounds/{roundID}/draw", h.DrawsHandler.ForceProcessDraw)
			r.Post("/rounds/{roundID}/cancel", h.DrawsHandler.CancelRound)
			r.Post("/results/{resultID}/convert", h.DrawsHandler.ConvertPrize)
		})
	})

	return r
}
