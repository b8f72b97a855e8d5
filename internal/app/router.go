package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/api"
	"github.com/psds-microservice/shop-api/internal/config"
	"github.com/psds-microservice/shop-api/internal/handler"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// NewRouter создает роутер с маршрутами
func NewRouter(
	itemHandler *handler.ItemHandler,
	cartHandler *handler.CartHandler,
	userHandler *handler.UserHandler,
	mathHandler *handler.MathHandler,
	rateLimiter *handler.RateLimitState,
	logger *zap.Logger,
	cfg *config.Config,
) http.Handler {

	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			logger.Info("HTTP Request",
				zap.String("method", param.Method),
				zap.String("path", param.Path),
				zap.Int("status", param.StatusCode),
				zap.Duration("latency", param.Latency),
				zap.String("client_ip", param.ClientIP))
			return ""
		},
	}))
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(metricsMiddleware())

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	}

	router.GET(constants.PathHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "shop-api",
			"version": "1.0.0",
			"time":    time.Now().Unix(),
		})
	})

	router.GET(constants.PathMetrics, gin.WrapH(promhttp.Handler()))

	router.GET(constants.PathOpenAPI, func(c *gin.Context) {
		c.Data(http.StatusOK, constants.ContentTypeJSON, api.OpenAPISpec)
	})
	router.GET(constants.PathSwagger+"/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL(constants.PathOpenAPI),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	)))

	// Math-эндпоинты — корневые, без версии (исторический контракт)
	mathHandler.RegisterRoutes(router)

	// Users — корневые; регистрация под рейт-лимитом
	userHandler.RegisterRoutes(router, handler.RateLimitMiddleware(rateLimiter))

	apiV1 := router.Group(constants.BasePathAPI)
	{
		maxBody := cfg.MaxBodyBytes
		if maxBody <= 0 {
			maxBody = 1 << 20 // 1 MB по умолчанию
		}
		apiV1.Use(bodyLimitMiddleware(maxBody))

		itemHandler.RegisterRoutes(apiV1)
		cartHandler.RegisterRoutes(apiV1)

		apiV1.GET(constants.PathStatus, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "running",
				"timestamp": time.Now().Unix(),
				"endpoints": []string{
					"/api/v1/item", "/api/v1/item/{id}",
					"/api/v1/cart", "/api/v1/cart/{id}", "/api/v1/cart/{cart_id}/add/{item_id}",
					"/user-register", "/user-get", "/user-promote",
					"/factorial", "/fibonacci/{n}", "/mean",
				},
			})
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "The requested resource was not found",
			"path":    c.Request.URL.Path,
			"suggestions": []string{
				"Check /health for service status",
				"Check /api/v1/status for API status",
				"Check /swagger/index.html for API docs",
			},
		})
	})

	return cors.New(corsOpts).Handler(router)
}

// bodyLimitMiddleware ограничивает размер тела запроса (защита от OOM)
func bodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   "Request entity too large",
				"message": fmt.Sprintf("Request body must not exceed %d bytes", maxBytes),
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
