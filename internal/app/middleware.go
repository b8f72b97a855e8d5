package app

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/psds-microservice/shop-api/internal/metrics"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// requestIDMiddleware проставляет X-Request-Id, если клиент его не прислал.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(constants.HeaderRequestID, requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// metricsMiddleware считает запросы и латентность. Endpoint берём из
// шаблона маршрута, чтобы не раздувать кардинальность лейблов.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(metrics.RequestLatency)
		defer timer.ObserveDuration()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestCount.WithLabelValues(c.Request.Method, endpoint).Inc()

		c.Next()

		if c.Writer.Status() < 400 {
			metrics.SuccessfulRequestCount.WithLabelValues(c.Request.Method, endpoint).Inc()
		}
	}
}
