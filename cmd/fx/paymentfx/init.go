package paymentfx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"schoolpay/internal/api/controllers"
	"schoolpay/internal/gateway"
	"schoolpay/internal/repositories"
	"schoolpay/internal/services"
	"schoolpay/pkg/logger"
)

var Module = fx.Provide(
	repositories.NewOrderRepository,
	repositories.NewOrderStatusRepository,
	repositories.NewWebhookLogRepository,
	provideGateway,
	providePaymentService,
	controllers.NewPaymentController,
)

func provideGateway() services.PaymentGateway {
	gw, err := gateway.NewRazorpayGateway(gateway.RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	})
	if err != nil {
		logger.Log.Fatal("error initializing payment gateway", zap.Error(err))
	}
	return gw
}

func providePaymentService(
	orderRepo repositories.OrderRepository,
	statusRepo repositories.OrderStatusRepository,
	webhookLogRepo repositories.WebhookLogRepository,
	gw services.PaymentGateway,
) services.PaymentService {
	cfg := services.PaymentConfig{FrontendURL: os.Getenv("FRONTEND_URL")}
	return services.NewPaymentService(orderRepo, statusRepo, webhookLogRepo, gw, cfg)
}
