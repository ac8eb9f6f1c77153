package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

// Observer is the process wide fit observer.
var Observer = NewMetrics()

// Metrics tracks the progress of the consensus searches.
type Metrics struct {
	prometheus Prometheus
}

// NewMetrics creates a new set of unregistered metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		prometheus: NewPrometheusMetrics(),
	}
}

// Trial counts an evaluated minimal sample.
func (m *Metrics) Trial(degenerate bool) {
	m.prometheus.Trials.WithLabelValues(strconv.FormatBool(degenerate)).Inc()
}

// Fit records a completed fit.
func (m *Metrics) Fit(points, inliers int) {
	m.prometheus.Fits.Inc()
	if points > 0 {
		m.prometheus.Inliers.Observe(float64(inliers) / float64(points))
	}
}

// Push sends the current values of the collectors to the pushgateway at the given url.
func (m *Metrics) Push(url, job string) error {
	pusher := push.New(url, job)
	for _, c := range m.prometheus.collectors() {
		pusher = pusher.Collector(c)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("could not push metrics to %s: %w", url, err)
	}
	log.Info().Str("url", url).Str("job", job).Msg("pushed metrics")
	return nil
}
