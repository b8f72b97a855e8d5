package app

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/config"
	"github.com/psds-microservice/shop-api/internal/controller"
	"github.com/psds-microservice/shop-api/internal/database"
	"github.com/psds-microservice/shop-api/internal/handler"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// Application основное приложение
type Application struct {
	config      *config.Config
	logger      *zap.Logger
	router      http.Handler
	server      *http.Server
	db          *sql.DB
	rateLimiter *handler.RateLimitState
	itemService *controller.ItemServiceImpl
	cartService *controller.CartServiceImpl
	userService *controller.UserServiceImpl
}

// NewApplicationWithConfig создает приложение с конфигурацией
func NewApplicationWithConfig(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	var (
		db        *sql.DB
		itemStore controller.ItemStore
		cartStore controller.CartStore
		userStore controller.UserStore
	)

	switch cfg.Storage {
	case "", constants.StorageMemory:
		itemStore = controller.NewItemRepository()
		cartStore = controller.NewCartRepository()
		userStore = controller.NewUserRepository()
	case constants.StoragePostgres:
		var err error
		db, err = database.Open(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("database ping: %w", err)
		}
		itemStore = controller.NewPostgresItemStore(db)
		cartStore = controller.NewPostgresCartStore(db)
		userStore = controller.NewPostgresUserStore(db)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	// Сервисы (DIP: зависят от интерфейсов Store)
	itemService := controller.NewItemService(logger, itemStore)
	cartService := controller.NewCartService(logger, cartStore, itemStore)
	userService := controller.NewUserService(logger, userStore)

	itemHandler := handler.NewItemHandler(logger, itemService)
	cartHandler := handler.NewCartHandler(logger, cartService)
	userHandler := handler.NewUserHandler(logger, userService)
	mathHandler := handler.NewMathHandler(logger)

	rateLimiter := handler.NewRateLimitState(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSec)*time.Second)

	router := NewRouter(itemHandler, cartHandler, userHandler, mathHandler, rateLimiter, logger, cfg)

	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	return &Application{
		config:      cfg,
		logger:      logger,
		router:      router,
		server:      server,
		db:          db,
		rateLimiter: rateLimiter,
		itemService: itemService,
		cartService: cartService,
		userService: userService,
	}, nil
}

// GetItemService возвращает сервис каталога
func GetItemService(app *Application) *controller.ItemServiceImpl {
	return app.itemService
}

// GetCartService возвращает сервис корзин
func GetCartService(app *Application) *controller.CartServiceImpl {
	return app.cartService
}

// GetUserService возвращает сервис пользователей
func GetUserService(app *Application) *controller.UserServiceImpl {
	return app.userService
}

// GetConfig возвращает конфигурацию
func GetConfig(app *Application) *config.Config {
	return app.config
}

// Start запускает приложение
func (app *Application) Start() error {
	app.logger.Info("Starting application",
		zap.String("address", app.server.Addr),
		zap.String("storage", app.config.Storage))
	return app.server.ListenAndServe()
}

// Stop останавливает приложение
func (app *Application) Stop() error {
	app.logger.Info("Stopping application")
	app.rateLimiter.Close()
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database", zap.Error(err))
		}
	}
	return app.server.Close()
}

// GetRouter возвращает роутер
func (app *Application) GetRouter() http.Handler {
	return app.router
}
