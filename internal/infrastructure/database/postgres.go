package database

import (
	"fmt"

	"github.com/casbin/gorm-adapter/v3"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables.
// This includes the domain tables and the Casbin policy table.
func AutoMigrate(db *gorm.DB) error {
	if err := repositories.Migrate(db); err != nil {
		return err
	}

	// The adapter creates the casbin_rule table if it doesn't exist
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
