// Package metrics wires the prometheus collectors for the service. All
// collectors live on a private registry so tests can construct isolated
// instances.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	OrdersPlaced    prometheus.Counter
	OrderRevenue    prometheus.Counter
}

// New creates a registry with the service collectors plus the standard Go
// runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bytebite",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route pattern, and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bytebite",
			Name:      "orders_placed_total",
			Help:      "Orders successfully committed to the ledger.",
		}),
		OrderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bytebite",
			Name:      "order_revenue_total",
			Help:      "Cumulative revenue of placed orders.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.OrdersPlaced,
		m.OrderRevenue,
	)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordOrder notes a successful placement and its value.
func (m *Metrics) RecordOrder(total float64) {
	m.OrdersPlaced.Inc()
	m.OrderRevenue.Add(total)
}
