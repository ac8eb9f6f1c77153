package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "ransac"

type Prometheus struct {
	Fits    prometheus.Counter
	Trials  *prometheus.CounterVec
	Inliers prometheus.Histogram
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "number of completed fits",
			}),
		Trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trials_total",
				Help:      "number of evaluated minimal samples",
			}, []string{"degenerate"}),
		Inliers: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "inlier_ratio",
				Help:      "share of the points supporting the fitted model",
				Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
			}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.Trials, p.Inliers}
}
