package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"services-marketplace-server/config"
	"services-marketplace-server/models"
)

// Open connects to Postgres and configures the pool. It does not migrate.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Successfully connected to database")
	return db, nil
}

// Migrate creates or updates every table in the registry, foreign keys included.
func Migrate(db *gorm.DB, registry *models.Registry) error {
	if err := db.AutoMigrate(registry.Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Printf("✅ Database migrations completed (%d tables)", len(registry.TableNames()))
	return nil
}

// Reset drops every registered table and migrates again. All data is lost.
func Reset(db *gorm.DB, registry *models.Registry) error {
	if err := db.Migrator().DropTable(registry.Reversed()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return Migrate(db, registry)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}
