package study

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts study activity for the /metrics endpoint.
type Metrics struct {
	reviews   *prometheus.CounterVec
	lapses    *prometheus.CounterVec
	leeches   *prometheus.CounterVec
	conflicts prometheus.Counter
}

// NewMetrics registers the study counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		// reviews counts ratings by deck and rating
		reviews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recall_reviews_total",
			Help: "Total ratings recorded by deck and rating",
		}, []string{"deck", "rating"}),
		lapses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recall_lapses_total",
			Help: "Total review cards forgotten by deck",
		}, []string{"deck"}),
		leeches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recall_leeches_total",
			Help: "Total cards that became leeches by deck",
		}, []string{"deck"}),
		conflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "recall_grade_conflicts_total",
			Help: "Total grade attempts retried after a concurrent modification",
		}),
	}
}
