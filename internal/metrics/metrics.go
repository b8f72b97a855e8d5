// Package metrics содержит Prometheus-коллекторы сервиса.
// Счётчики запросов инкрементирует HTTP middleware, доменные — сервисы.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCount — все HTTP запросы по методу и пути.
	RequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "request_count",
		Help: "Total number of requests",
	}, []string{"method", "endpoint"})

	// SuccessfulRequestCount — запросы, завершившиеся статусом < 400.
	SuccessfulRequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "successful_requests",
		Help: "Total number of successful requests",
	}, []string{"method", "endpoint"})

	// ItemsCreated — созданные товары.
	ItemsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "items_created",
		Help: "Total number of items created",
	})

	// ItemsDeleted — мягко удалённые товары.
	ItemsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "items_deleted",
		Help: "Total number of items deleted",
	})

	// CartOperations — операции с корзинами по типу операции.
	CartOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations",
		Help: "Total number of cart operations",
	}, []string{"operation"})

	// RequestLatency — латентность HTTP запросов.
	RequestLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "request_latency_seconds",
		Help: "Request latency in seconds",
	})
)
