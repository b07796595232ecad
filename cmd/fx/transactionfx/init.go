package transactionfx

import (
	"go.uber.org/fx"

	"schoolpay/internal/api/controllers"
	"schoolpay/internal/repositories"
	"schoolpay/internal/services"
)

var Module = fx.Provide(
	repositories.NewTransactionRepository,
	services.NewTransactionService,
	controllers.NewTransactionController,
	controllers.NewHealthController,
)
