package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ckd"

// Metrics holds the prediction service collectors
type Metrics struct {
	predictions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Successful predictions by predicted label.",
		}, []string{"label"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_failures_total",
			Help:      "Failed predictions by error kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent handling a prediction request.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
	}
	reg.MustRegister(m.predictions, m.failures, m.duration)
	return m
}

// NewRegistry returns a registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ObservePrediction records a successful prediction
func (m *Metrics) ObservePrediction(label string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(label).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a failed prediction
func (m *Metrics) ObserveFailure(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
	m.duration.Observe(elapsed.Seconds())
}
