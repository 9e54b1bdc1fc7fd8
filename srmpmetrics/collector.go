package srmpmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements srmp.MetricsSink: a gauge tracking the most recent
// lower bound, a counter of sweeps performed, and a histogram of SEND
// operation latencies.
type Collector struct {
	lowerBound   prometheus.Gauge
	sweepsTotal  prometheus.Counter
	sendDuration prometheus.Histogram
}

// NewCollector builds a Collector and registers its metrics with reg. Pass
// prometheus.DefaultRegisterer to wire it into the default /metrics
// endpoint.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		lowerBound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srmp",
			Name:      "lower_bound",
			Help:      "Most recent dual lower bound reported by a sweep.",
		}),
		sweepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srmp",
			Name:      "sweeps_total",
			Help:      "Number of forward/backward sweeps performed.",
		}),
		sendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "srmp",
			Name:      "send_duration_seconds",
			Help:      "Wall-clock duration of individual SEND operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}

	reg.MustRegister(c.lowerBound, c.sweepsTotal, c.sendDuration)

	return c
}

// SweepCompleted implements srmp.MetricsSink.
func (c *Collector) SweepCompleted(lowerBound float64) {
	c.lowerBound.Set(lowerBound)
	c.sweepsTotal.Inc()
}

// SendObserved implements srmp.MetricsSink.
func (c *Collector) SendObserved(d time.Duration) {
	c.sendDuration.Observe(d.Seconds())
}
