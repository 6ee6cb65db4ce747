// Package metrics exposes prometheus instruments for the callback service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CallbacksReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callbacks_received_total",
			Help: "Total number of callback payloads received",
		},
	)

	CallbacksStoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callbacks_stored_total",
			Help: "Total number of callbacks durably stored",
		},
	)

	CallbacksFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callbacks_failed_total",
			Help: "Total number of callbacks that failed a persistence step",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers all prometheus metrics with the default registry.
func Register() {
	prometheus.MustRegister(
		CallbacksReceivedTotal,
		CallbacksStoredTotal,
		CallbacksFailedTotal,
		HTTPRequestDuration,
	)
}
