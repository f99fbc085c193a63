// Package metrics provides Prometheus instrumentation for outbound
// football-data.org requests.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "footballdata"
	subsystem = "client"
)

// Recorder counts requests and observes their latency.
type Recorder struct {
	requests        *prometheus.CounterVec
	requestErrors   prometheus.Counter
	requestDuration prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on registry.
func NewRecorder(registry prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Requests that received a response, by HTTP status code.",
		}, []string{"code"}),
		requestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_errors_total",
			Help:      "Requests that failed at the transport layer.",
		}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting on the remote API.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{r.requests, r.requestErrors, r.requestDuration} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveResponse records a request that got an HTTP response.
func (r *Recorder) ObserveResponse(statusCode int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	r.requestDuration.Observe(elapsed.Seconds())
}

// ObserveError records a transport failure.
func (r *Recorder) ObserveError(elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestErrors.Inc()
	r.requestDuration.Observe(elapsed.Seconds())
}
