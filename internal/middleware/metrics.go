package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reelmates_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// CatalogRequests counts outbound catalog API calls by result.
var CatalogRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reelmates_catalog_requests_total",
	Help: "Total number of TMDB catalog requests by result",
}, []string{"result"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
