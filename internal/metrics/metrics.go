package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts service calls by method and result
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "democracy_operations_total",
			Help: "Total number of election service operations",
		},
		[]string{"method", "result"},
	)

	// OperationDuration tracks service call latency
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "democracy_operation_duration_seconds",
			Help:    "Election service operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// RegisteredCitizens tracks the number of registered citizens
	RegisteredCitizens = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "democracy_registered_citizens",
			Help: "Number of registered citizens",
		},
	)

	// Candidates tracks the number of declared candidates
	Candidates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "democracy_candidates",
			Help: "Number of declared candidates",
		},
	)

	// VotesCast tracks the number of votes cast
	VotesCast = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "democracy_votes_cast",
			Help: "Number of votes cast",
		},
	)

	// EventsEmitted counts registry logs by event name
	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "democracy_events_emitted_total",
			Help: "Total number of registry events emitted",
		},
		[]string{"event"},
	)

	// LastSequence tracks the sequence number of the last accepted mutation
	LastSequence = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "democracy_last_sequence",
			Help: "Sequence number of the last accepted registry mutation",
		},
	)
)
