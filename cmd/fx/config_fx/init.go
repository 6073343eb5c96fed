package config_fx

import (
	"darwinplanner/internal/config"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideJWTManager,
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	log.ReplaceGlobals()
	lc.Append(fx.StopHook(log.Sync))
	return log, nil
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
