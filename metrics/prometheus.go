package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the qrpay metric vectors on the
// default registry. Counters are labelled by event type and the wire
// format involved ("" when no detector matched).
func NewPrometheusRecorder() Recorder {
	return NewPrometheusRecorderWith(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWith registers on a caller-supplied registry,
// which keeps tests and multi-parser embedders from colliding on
// duplicate registration.
func NewPrometheusRecorderWith(reg prometheus.Registerer) Recorder {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qrpay",
			Name:      "scans_total",
			Help:      "scanned payload outcomes by event type and wire format",
		},
		[]string{"type", "format"},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "qrpay",
			Name:      "parse_latency_seconds",
			Help:      "parse operation latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "format"},
	)

	reg.MustRegister(counters, histogram)

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"type":   name,
		"format": labels["format"],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation": name,
		"format":    labels["format"],
	}).Observe(d.Seconds())
}
