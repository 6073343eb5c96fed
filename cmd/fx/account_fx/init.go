package account_fx

import (
	"darwinplanner/internal/config"
	"darwinplanner/internal/repositories"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, cfg *config.Config, log *logger.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwt, cfg.Auth.TokenTTL, log)
}
