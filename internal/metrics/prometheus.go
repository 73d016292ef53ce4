package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "som"

// Prometheus holds the collectors for training and recall.
type Prometheus struct {
	Iterations       *prometheus.CounterVec
	Recalls          *prometheus.CounterVec
	QuantizationErr  *prometheus.GaugeVec
	TrainingDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "training_iterations_total",
				Help:      "Number of completed training iterations.",
			}, []string{"decay", "mode"}),
		Recalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recalled_samples_total",
				Help:      "Number of samples assigned to a population label.",
			}, []string{"label"}),
		QuantizationErr: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "quantization_error",
				Help:      "Average distance of the training samples to their best matching unit after the last run.",
			}, []string{"decay", "mode"}),
		TrainingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "training_duration_seconds",
				Help:      "Duration of complete training runs.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			}, []string{"decay", "mode"}),
	}
}

// Collectors returns all collectors for registration.
func (p Prometheus) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.Iterations,
		p.Recalls,
		p.QuantizationErr,
		p.TrainingDuration,
	}
}
