// SPDX-License-Identifier: MIT

package obstruct

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors updated by Search.
type Metrics struct {
	Searches    prometheus.Counter
	Candidates  *prometheus.CounterVec
	TraceLength prometheus.Histogram
}

// NewMetrics creates the search collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridpatrol",
			Subsystem: "obstruct",
			Name:      "searches_total",
			Help:      "Loop obstacle searches started.",
		}),
		Candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpatrol",
			Subsystem: "obstruct",
			Name:      "candidates_total",
			Help:      "Candidate obstructions evaluated, by stop reason.",
		}, []string{"stop"}),
		TraceLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpatrol",
			Subsystem: "obstruct",
			Name:      "trace_states",
			Help:      "Guard states recorded per candidate trace.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Searches, m.Candidates, m.TraceLength} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("obstruct: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(path *patrol.Path) {
	if m == nil {
		return
	}
	m.Candidates.WithLabelValues(path.Stop.String()).Inc()
	m.TraceLength.Observe(float64(path.Len()))
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}
