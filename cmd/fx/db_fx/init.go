package db_fx

import (
	"darwinplanner/internal/config"
	"darwinplanner/internal/infra"
	"darwinplanner/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(seedCatalog),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() { infra.CloseDatabase(db, log) }))
	return db, nil
}

func seedCatalog(cfg *config.Config, db *gorm.DB, log *logger.Logger) error {
	if !cfg.Database.SeedCatalog {
		return nil
	}
	return infra.SeedCatalog(db, log)
}
