package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpay/internal/models/db_models"
)

type OrderStatusRepository interface {
	Create(ctx context.Context, status *db_models.OrderStatus) error
	FindByCollectID(ctx context.Context, collectID uuid.UUID) (*db_models.OrderStatus, error)
	// UpdateByCollectID overwrites the row for collectID with the given
	// fields. Last write wins; nothing guards against a stale webhook
	// arriving after a newer one.
	UpdateByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error)
	// UpsertByCollectID is UpdateByCollectID with create-if-absent.
	UpsertByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error)
}

type orderStatusRepository struct {
	db *gorm.DB
}

func NewOrderStatusRepository(db *gorm.DB) OrderStatusRepository {
	return &orderStatusRepository{db: db}
}

func (r *orderStatusRepository) Create(ctx context.Context, status *db_models.OrderStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *orderStatusRepository) FindByCollectID(ctx context.Context, collectID uuid.UUID) (*db_models.OrderStatus, error) {
	var status db_models.OrderStatus
	err := r.db.WithContext(ctx).Where("collect_id = ?", collectID).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

func (r *orderStatusRepository) UpdateByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.OrderStatus{}).
		Where("collect_id = ?", collectID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.FindByCollectID(ctx, collectID)
}

func (r *orderStatusRepository) UpsertByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	existing, err := r.FindByCollectID(ctx, collectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		status := &db_models.OrderStatus{CollectID: collectID}
		applyStatusFields(status, fields)
		if err := r.Create(ctx, status); err != nil {
			return nil, err
		}
		return status, nil
	}
	return r.UpdateByCollectID(ctx, collectID, fields)
}

func applyStatusFields(status *db_models.OrderStatus, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "order_amount":
			status.OrderAmount, _ = value.(float64)
		case "transaction_amount":
			status.TransactionAmount, _ = value.(float64)
		case "payment_mode":
			status.PaymentMode = db_models.PaymentMode(asStr(value))
		case "payment_details":
			status.PaymentDetails = asStr(value)
		case "bank_reference":
			status.BankReference = asStr(value)
		case "payment_message":
			status.PaymentMessage = asStr(value)
		case "status":
			status.Status = db_models.PaymentStatus(asStr(value))
		case "error_message":
			status.ErrorMessage = asStr(value)
		case "payment_time":
			status.PaymentTime, _ = value.(int64)
		case "razorpay_order_id":
			status.RazorpayOrderID = asStr(value)
		case "razorpay_payment_id":
			status.RazorpayPaymentID = asStr(value)
		case "razorpay_signature":
			status.RazorpaySignature = asStr(value)
		}
	}
}

func asStr(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case db_models.PaymentMode:
		return string(s)
	case db_models.PaymentStatus:
		return string(s)
	}
	return ""
}
