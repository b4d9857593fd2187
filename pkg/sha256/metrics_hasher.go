package sha256

import (
	"sync"
	"time"

	"github.com/cryptoprim/cp-digest/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	hasherPrometheusMetrics sync.Once

	hasherOperationsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cryptoprim",
			Subsystem: "sha256",
			Name:      "hasher_operations_started_total",
			Help:      "Total number of messages for which hashing was started.",
		},
		[]string{"name"})
	hasherOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cryptoprim",
			Subsystem: "sha256",
			Name:      "hasher_operations_duration_seconds",
			Help:      "Amount of time spent hashing a single message, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 6, 2),
		},
		[]string{"name"})
)

type metricsHasher struct {
	base Hasher

	started  prometheus.Counter
	duration prometheus.Observer
}

// NewMetricsHasher is a decorator for Hasher that exposes the number of
// messages hashed and the time spent hashing them through Prometheus.
func NewMetricsHasher(base Hasher, name string) Hasher {
	hasherPrometheusMetrics.Do(func() {
		prometheus.MustRegister(hasherOperationsStartedTotal)
		prometheus.MustRegister(hasherOperationsDurationSeconds)
	})

	return &metricsHasher{
		base: base,

		started:  hasherOperationsStartedTotal.WithLabelValues(name),
		duration: hasherOperationsDurationSeconds.WithLabelValues(name),
	}
}

func (h *metricsHasher) Hash(message []byte) ([Size]byte, error) {
	h.started.Inc()
	timeStart := time.Now()
	digest, err := h.base.Hash(message)
	h.duration.Observe(time.Now().Sub(timeStart).Seconds())
	return digest, err
}
