package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"schoolpay/cmd/fx/accountfx"
	"schoolpay/cmd/fx/dbfx"
	"schoolpay/cmd/fx/paymentfx"
	"schoolpay/cmd/fx/transactionfx"
	"schoolpay/internal/api/controllers"
	"schoolpay/pkg/logger"
	"schoolpay/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize(os.Getenv("APP_ENV"))

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		paymentfx.Module,
		transactionfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Info("starting HTTP server", zap.String("port", port))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	paymentController *controllers.PaymentController,
	transactionController *controllers.TransactionController,
	healthController *controllers.HealthController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, paymentController, transactionController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	paymentController *controllers.PaymentController,
	transactionController *controllers.TransactionController,
	healthController *controllers.HealthController) {

	r.GET("/", healthController.Root)
	r.GET("/health", healthController.Health)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(100, 15*time.Minute))

	authGroup := api.Group("/auth")
	authLimiter := middleware.RateLimitMiddleware(10, 15*time.Minute)
	authGroup.POST("/register", authLimiter, authController.Register)
	authGroup.POST("/login", authLimiter, authController.Login)
	authGroup.GET("/profile", middleware.JWTAuthMiddleware(), authController.GetProfile)
	authGroup.PUT("/profile", middleware.JWTAuthMiddleware(), authController.UpdateProfile)
	authGroup.PUT("/change-password", middleware.JWTAuthMiddleware(), authController.ChangePassword)

	paymentGroup := api.Group("/payment")
	paymentGroup.POST("/create-payment", middleware.JWTAuthMiddleware(), paymentController.CreatePayment)
	paymentGroup.POST("/verify-payment", middleware.JWTAuthMiddleware(), paymentController.VerifyPayment)
	paymentGroup.GET("/details/:order_id", middleware.JWTAuthMiddleware(), paymentController.GetPaymentDetails)
	// Webhook stays public; the gateway cannot send a bearer token.
	paymentGroup.POST("/webhook", paymentController.HandleWebhook)

	txnGroup := api.Group("/transactions")
	txnGroup.Use(middleware.JWTAuthMiddleware())
	txnGroup.GET("", transactionController.ListTransactions)
	txnGroup.GET("/stats", transactionController.TransactionStats)
	txnGroup.GET("/school/:schoolId", transactionController.ListTransactionsBySchool)
	txnGroup.GET("/status/:custom_order_id", transactionController.TransactionStatus)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})
}
