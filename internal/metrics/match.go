package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
)

// Match and catalog Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "detailmatch",
			Name:      "match_requests_total",
			Help:      "Total match requests by outcome",
		},
		[]string{"outcome"}, // "matched" / "no_match"
	)

	MatchConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "detailmatch",
			Name:      "match_confidence",
			Help:      "Confidence of accepted matches",
			Buckets:   []float64{0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1},
		},
	)

	CatalogDetails = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "detailmatch",
			Name:      "catalog_details",
			Help:      "Number of details in the catalog",
		},
	)

	CatalogMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "detailmatch",
			Name:      "catalog_mutations_total",
			Help:      "Catalog add/remove calls by result",
		},
		[]string{"op", "result"}, // result: "changed" / "noop"
	)
)

// Match outcome label values.
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

var registerOnce sync.Once

// Register registers every service metric on the default registry. Must be
// called once from main; repeated calls are no-ops.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequestDuration)
		prometheus.MustRegister(httpRequestsTotal)
		prometheus.MustRegister(MatchRequestsTotal)
		prometheus.MustRegister(MatchConfidence)
		prometheus.MustRegister(CatalogDetails)
		prometheus.MustRegister(CatalogMutationsTotal)
	})
}

// Observer feeds match and catalog events into the metrics above.
type Observer struct{}

// NewObserver creates an Observer.
func NewObserver() *Observer { return &Observer{} }

// ObserveMatch records a match outcome.
func (*Observer) ObserveMatch(res dommatch.Result) {
	if !res.Matched() {
		MatchRequestsTotal.WithLabelValues(OutcomeNoMatch).Inc()
		return
	}
	MatchRequestsTotal.WithLabelValues(OutcomeMatched).Inc()
	MatchConfidence.Observe(res.Confidence())
}

// ObserveMutation records a catalog add or remove.
func (*Observer) ObserveMutation(op string, changed bool) {
	result := "noop"
	if changed {
		result = "changed"
	}
	CatalogMutationsTotal.WithLabelValues(op, result).Inc()
}

// ObserveSize records the current catalog size.
func (*Observer) ObserveSize(n int) {
	CatalogDetails.Set(float64(n))
}
