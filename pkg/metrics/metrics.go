package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlanGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "darwin_plan_generations_total",
			Help: "Plan generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	PlanGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "darwin_plan_generation_duration_seconds",
			Help:    "End to end plan generation time",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"outcome"},
	)

	GenerationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "darwin_plan_generations_in_flight",
			Help: "Plan generations currently running",
		},
	)

	CatalogMentions = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "darwin_catalog_mentions",
			Help:    "Catalog entities mentioned per generated plan",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
		[]string{"kind"},
	)

	ConversationAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "darwin_conversation_answers_total",
			Help: "Answers submitted to the trip conversation by step and result",
		},
		[]string{"step", "result"},
	)
)

const (
	OutcomeSuccess     = "success"
	OutcomeGeneration  = "generation_error"
	OutcomeUnavailable = "unavailable"
	OutcomeStore       = "store_error"
)
