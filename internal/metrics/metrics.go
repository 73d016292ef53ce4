package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Observer is the process wide metrics sink.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Collectors()...)
}

// Metrics records training and recall activity.
type Metrics struct {
	prometheus Prometheus
}

// Trained records a completed training run.
func (m *Metrics) Trained(decay, mode string, iterations int, duration time.Duration, quantizationErr float64) {
	m.prometheus.Iterations.WithLabelValues(decay, mode).Add(float64(iterations))
	m.prometheus.TrainingDuration.WithLabelValues(decay, mode).Observe(duration.Seconds())
	m.prometheus.QuantizationErr.WithLabelValues(decay, mode).Set(quantizationErr)
}

// Recalled records the labels assigned during a recall.
func (m *Metrics) Recalled(labels ...int) {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	for l, c := range counts {
		m.prometheus.Recalls.WithLabelValues(strconv.Itoa(l)).Add(float64(c))
	}
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
