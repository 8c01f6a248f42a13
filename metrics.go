package tailcss

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Token outcomes reported by Metrics.Tokens.
const (
	OutcomeGenerated = "generated"
	OutcomeSkipped   = "skipped"
	OutcomeUnknown   = "unknown"
)

// Metrics holds the generator's Prometheus collectors.
type Metrics struct {
	// Tokens counts canonical classes by outcome.
	Tokens *prometheus.CounterVec

	// CacheHits and CacheMisses count lookups of the token cache.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Rules counts the distinct rules returned by Generate.
	Rules prometheus.Counter
}

// NewMetrics returns a new set of collectors registered with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tailcss",
			Name:      "tokens_total",
			Help:      "Canonical classes processed, by outcome.",
		}, []string{"outcome"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tailcss",
			Name:      "cache_hits_total",
			Help:      "Class tokens served from the token cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tailcss",
			Name:      "cache_misses_total",
			Help:      "Class tokens that had to be generated.",
		}),
		Rules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tailcss",
			Name:      "rules_total",
			Help:      "Distinct rules generated.",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.Tokens, m.CacheHits, m.CacheMisses, m.Rules} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
