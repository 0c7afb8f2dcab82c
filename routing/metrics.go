// This file wires the optional Prometheus counters.
package routing

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serviceMetrics holds the per-service Prometheus collectors. A nil
// *serviceMetrics is valid and records nothing.
type serviceMetrics struct {
	requests   *prometheus.CounterVec
	dispatches *prometheus.CounterVec
}

// newServiceMetrics registers the routing counters with reg.
func newServiceMetrics(reg prometheus.Registerer) *serviceMetrics {
	factory := promauto.With(reg)

	return &serviceMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routesim",
			Subsystem: "routing",
			Name:      "requests_total",
			Help:      "Submitted route requests by outcome status.",
		}, []string{"status"}),
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routesim",
			Subsystem: "routing",
			Name:      "dispatches_total",
			Help:      "Requests dispatched to each backend index.",
		}, []string{"backend"}),
	}
}

// observe records one finished request. Safe on a nil receiver.
func (m *serviceMetrics) observe(res RouteResult) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(res.Status.String()).Inc()
	if res.Backend >= 0 {
		m.dispatches.WithLabelValues(strconv.Itoa(res.Backend)).Inc()
	}
}
