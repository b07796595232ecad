package accountfx

import (
	"go.uber.org/fx"

	"schoolpay/internal/api/controllers"
	"schoolpay/internal/repositories"
	"schoolpay/internal/services"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	services.NewAccountService,
	controllers.NewAuthController,
)
