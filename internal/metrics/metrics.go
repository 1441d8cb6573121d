// Package metrics holds the prometheus collectors for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_operations_total",
		Help: "Calculator operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	ExpressionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_expressions_total",
		Help: "Free-form expression evaluations by outcome.",
	}, []string{"outcome"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
