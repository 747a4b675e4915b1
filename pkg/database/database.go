package database

import (
	"log"
	"time"

	"github.com/vilimcapic/fipu-IS-projekt/config"
	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured store and migrates the schema. The default
// sqlite driver creates the database file on first run.
func Open(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.AutoMigrate(&models.Trip{}, &models.Traveller{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}
