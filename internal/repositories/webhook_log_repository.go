package repositories

import (
	"context"

	"gorm.io/gorm"

	"schoolpay/internal/models/db_models"
)

type WebhookLogRepository interface {
	Create(ctx context.Context, log *db_models.WebhookLog) error
}

type webhookLogRepository struct {
	db *gorm.DB
}

func NewWebhookLogRepository(db *gorm.DB) WebhookLogRepository {
	return &webhookLogRepository{db: db}
}

func (r *webhookLogRepository) Create(ctx context.Context, log *db_models.WebhookLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
