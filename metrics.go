package prana

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prana_api_requests_total",
			Help: "Prana API requests by route and status code (code 0 = no response)",
		},
		[]string{"method", "route", "code"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prana_api_request_duration_seconds",
			Help:    "Prana API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	tokenRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prana_token_refresh_total",
			Help: "Access token refreshes by result",
		},
		[]string{"result"},
	)
	rpcCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prana_rpc_commands_total",
			Help: "Device RPC commands by mode, method and result",
		},
		[]string{"mode", "method", "result"},
	)
)

// MetricsCollectors returns the client's collectors. The client always
// records into them; register them to export.
//
// Example:
//
//	prometheus.MustRegister(prana.MetricsCollectors()...)
func MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		apiRequests,
		apiRequestDuration,
		tokenRefreshes,
		rpcCommands,
	}
}

func observeRequest(method, route string, status int, elapsed time.Duration) {
	apiRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	apiRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
