package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sudograph",
		Name:      "solves_total",
		Help:      "Solve requests by outcome (solved, unsolvable, error).",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sudograph",
		Name:      "solve_duration_seconds",
		Help:      "Wall time spent in the solve engine per request.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)
