package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "corkboard_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// CascadeDeletes counts cascade delete operations by root entity kind.
var CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "corkboard_cascade_deletes_total",
	Help: "Total number of cascade delete operations by root entity",
}, []string{"entity"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
