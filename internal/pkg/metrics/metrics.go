package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the service counters. A single instance is constructed in
// bootstrap and injected wherever counters are incremented.
type Metrics struct {
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec

	LocksReserved     prometheus.Counter
	LocksExpired      prometheus.Counter
	OrdersReclaimed   prometheus.Counter
	PaymentsConfirmed prometheus.Counter
	DispatchSucceeded prometheus.Counter
	DispatchFailed    prometheus.Counter
}

func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, path and status.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		LocksReserved: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_locks_reserved_total",
			Help:        "Provisional time-slot locks successfully reserved.",
			ConstLabels: labels,
		}),
		LocksExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_locks_expired_total",
			Help:        "Lock rows removed by the expiry sweep.",
			ConstLabels: labels,
		}),
		OrdersReclaimed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "orders_reclaimed_total",
			Help:        "Abandoned unpaid orders deleted by the reclaimer.",
			ConstLabels: labels,
		}),
		PaymentsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "payments_confirmed_total",
			Help:        "Payment confirmations applied (excluding replays).",
			ConstLabels: labels,
		}),
		DispatchSucceeded: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "repair_dispatch_success_total",
			Help:        "Repair orders scheduled by the daily dispatch.",
			ConstLabels: labels,
		}),
		DispatchFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "repair_dispatch_failure_total",
			Help:        "Repair orders the daily dispatch could not schedule.",
			ConstLabels: labels,
		}),
	}
}
