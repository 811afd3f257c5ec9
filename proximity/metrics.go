// SPDX-License-Identifier: MIT

package proximity

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "proxima"

// Query kinds used as the "kind" label.
const (
	kindNearest  = "nearest"
	kindRange    = "range"
	kindDiscover = "discover"
)

// Metrics holds the Prometheus collectors a Scanner reports to.
// A nil *Metrics records nothing.
type Metrics struct {
	// QueriesTotal counts scanner queries. Labels: kind (nearest, range, discover).
	QueriesTotal *prometheus.CounterVec

	// QueryDurationSeconds measures scanner query latency. Labels: kind.
	QueryDurationSeconds *prometheus.HistogramVec

	// Candidates observes how many parties passed the threshold filter in Discover.
	Candidates prometheus.Histogram

	// GroupsProvenTotal counts group proofs. Labels: proximate (true, false).
	GroupsProvenTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors. Registering twice on the same
// registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "queries_total",
			Help:      "Scanner queries by kind",
		}, []string{"kind"}),
		QueryDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "query_duration_seconds",
			Help:      "Scanner query latency in seconds by kind",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kind"}),
		Candidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "candidates",
			Help:      "Parties within threshold considered by Discover",
			Buckets:   prometheus.LinearBuckets(0, 8, 9),
		}),
		GroupsProvenTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "groups_proven_total",
			Help:      "Group proofs produced, by whether all members were proximate",
		}, []string{"proximate"}),
	}
}

func (m *Metrics) observeQuery(kind string, start time.Time) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(kind).Inc()
	m.QueryDurationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeCandidates(n int) {
	if m == nil {
		return
	}
	m.Candidates.Observe(float64(n))
}

func (m *Metrics) observeProof(p GroupProof) {
	if m == nil {
		return
	}
	m.GroupsProvenTotal.WithLabelValues(strconv.FormatBool(p.AllProximate)).Inc()
}
