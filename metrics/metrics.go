// Package metrics exports search statistics to Prometheus.
//
// Metrics:
//
//	gridpath_searches_total{outcome}   counter, one per Search call
//	gridpath_search_expanded_cells     histogram of cells expanded
//	gridpath_search_path_length        histogram of path cells, successful searches only
//	gridpath_search_duration_seconds   histogram of wall time
//
// A *Collector is an astar.Observer: pass it with astar.WithObserver.
//
// Example queries:
//
//	# searches per second that found no route
//	rate(gridpath_searches_total{outcome="no_path"}[5m])
//
//	# 95th percentile search latency
//	histogram_quantile(0.95, rate(gridpath_search_duration_seconds_bucket[5m]))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/astar"
)

const namespace = "gridpath"

// Collector holds the search metrics. All methods are safe for concurrent use.
type Collector struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

var _ astar.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
// It panics if registration fails, like prometheus.MustRegister.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of path searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expanded_cells",
			Help:      "Number of cells expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_path_length",
			Help:      "Number of cells in found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	reg.MustRegister(c.searches, c.expanded, c.pathLength, c.duration)

	// Expose every outcome at zero so rate() works before the first failure.
	for _, o := range astar.Outcomes() {
		c.searches.WithLabelValues(o.String())
	}

	return c
}

// ObserveSearch records one search.
func (c *Collector) ObserveSearch(s astar.Stats) {
	c.searches.WithLabelValues(s.Outcome.String()).Inc()
	c.expanded.Observe(float64(s.Expanded))
	c.duration.Observe(s.Duration.Seconds())
	if s.PathLen > 0 {
		c.pathLength.Observe(float64(s.PathLen))
	}
}
