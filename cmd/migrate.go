package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/psds-microservice/shop-api/internal/command"
	"github.com/psds-microservice/shop-api/internal/config"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the last migration instead of applying")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := config.LoadConfigFromEnv()

	if migrateDown {
		if err := command.MigrateDown(cfg.DatabaseURL()); err != nil {
			return err
		}
		log.Println("migrate down: ok")
		return nil
	}
	if err := command.MigrateUp(cfg.DatabaseURL()); err != nil {
		return err
	}
	log.Println("migrate up: ok")
	return nil
}
