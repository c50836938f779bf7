package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quest_admin"

var (
	// ReviewTransitions counts proof reviews by resulting status.
	ReviewTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "review",
			Name:      "transitions_total",
			Help:      "Proof reviews written, by resulting status",
		},
		[]string{"status"},
	)

	// PropagationFailures counts approvals whose quest proof_url write failed
	// after the proof itself was approved.
	PropagationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "review",
			Name:      "propagation_failures_total",
			Help:      "Approved proofs whose quest proof_url could not be written",
		},
	)

	PayoutUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "review",
			Name:      "payout_updates_total",
			Help:      "Payout edits written to quest proofs",
		},
	)

	AdminChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "checks_total",
			Help:      "Admin authorization decisions, by outcome",
		},
		[]string{"outcome"},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "up",
			Help:      "1 when the record store answered the last health check",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
