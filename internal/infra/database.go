package infra

import (
	"fmt"

	"darwinplanner/internal/config"
	"darwinplanner/internal/models/db_models"
	"darwinplanner/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects with the configured driver and migrates the schema
// when auto_migrate is on.
func OpenDatabase(cfg config.DatabaseConfig, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(db_models.All()...); err != nil {
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
	}

	log.Info("database connected", "driver", cfg.Driver, "auto_migrate", cfg.AutoMigrate)
	return db, nil
}

func CloseDatabase(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("closing database connection", "error", err)
	} else {
		log.Info("database connection closed")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	return db.Begin()
}

// ReleaseTransaction commits tx, or rolls it back when err is set.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return fmt.Errorf("rollback after %v: %w", err, rollbackErr)
		}
		return err
	}
	return tx.Commit().Error
}
