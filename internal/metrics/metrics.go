package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purchaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luckydraw_purchase_total",
		Help: "Spot purchase attempts by result.",
	}, []string{"result"})

	purchaseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "luckydraw_purchase_duration_seconds",
		Help:    "Spot purchase latency.",
		Buckets: prometheus.DefBuckets,
	})

	drawTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luckydraw_draw_total",
		Help: "Draw processing attempts by outcome.",
	}, []string{"outcome"})

	drawDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "luckydraw_draw_duration_seconds",
		Help:    "Draw processing latency including chain lookups.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	prizeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luckydraw_prize_distribution_total",
		Help: "Prize distribution attempts by outcome.",
	}, []string{"outcome"})

	prizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "luckydraw_prize_distribution_duration_seconds",
		Help:    "Prize distribution latency.",
		Buckets: prometheus.DefBuckets,
	})
)

func RecordPurchase(result string, start time.Time) {
	purchaseTotal.WithLabelValues(result).Inc()
	purchaseDuration.Observe(time.Since(start).Seconds())
}

func RecordDraw(outcome string, start time.Time) {
	drawTotal.WithLabelValues(outcome).Inc()
	drawDuration.Observe(time.Since(start).Seconds())
}

func RecordPrize(outcome string, start time.Time) {
	prizeTotal.WithLabelValues(outcome).Inc()
	prizeDuration.Observe(time.Since(start).Seconds())
}
