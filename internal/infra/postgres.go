package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolpay/internal/models/db_models"
	"schoolpay/pkg/logger"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("error connecting to database", zap.Error(err))
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Order{},
		&db_models.OrderStatus{},
		&db_models.WebhookLog{},
	); err != nil {
		logger.Log.Fatal("error migrating schema", zap.Error(err))
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Log.Error("error closing database connection", zap.Error(err))
	} else {
		logger.Log.Info("postgresql connection closed")
	}
}
