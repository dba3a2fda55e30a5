// internal/metrics/metrics.go
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created",
		},
	)
	ExercisesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_created_total",
			Help: "Total exercises recorded",
		},
	)
	LogQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "log_queries_total",
			Help: "Total exercise log queries served",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

var registerOnce sync.Once

// Init registers the domain collectors with the default registry.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(UsersCreated)
		prometheus.MustRegister(ExercisesCreated)
		prometheus.MustRegister(LogQueries)
	})
}
