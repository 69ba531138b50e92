// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Time spent fetching a sheet source",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "outcome"},
	)

	SourceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_cache_lookups_total",
			Help: "Cached sheet source lookups by result",
		},
		[]string{"source", "result"},
	)

	LeaderboardParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "leaderboard_participants",
			Help: "Participants on the last built leaderboard",
		},
		[]string{"board"},
	)

	RefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_runs_total",
			Help: "Scheduled source refreshes by outcome",
		},
		[]string{"outcome"},
	)
)
