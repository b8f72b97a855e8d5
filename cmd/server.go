package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/app"
	"github.com/psds-microservice/shop-api/internal/config"
)

var (
	serverDebug  bool
	serverConfig string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run HTTP API server",
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().BoolVar(&serverDebug, "debug", false, "Debug logging")
	serverCmd.Flags().StringVar(&serverConfig, "config", "./config/config.yaml", "Path to config.yaml")
}

func runServer(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var logger *zap.Logger
	var err error
	if serverDebug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(serverConfig)
	if err != nil {
		logger.Warn("Failed to load config", zap.Error(err))
		cfg = config.GetDefaultConfig()
	}

	application, err := app.NewApplicationWithConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return err
	}

	logger.Info("Stopping server...")
	if err := application.Stop(); err != nil {
		logger.Error("HTTP stop error", zap.Error(err))
	}
	logger.Info("Server stopped")
	return nil
}
