package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"teachassist/internal/api/controllers"
	"teachassist/internal/repositories"
	"teachassist/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
