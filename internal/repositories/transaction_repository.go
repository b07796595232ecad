package repositories

import (
	"context"

	"gorm.io/gorm"

	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"
)

// TransactionRepository runs the Order ⋈ OrderStatus reporting pipeline.
// Orders without a status row are preserved (LEFT JOIN); their status
// fields scan as NULL.
type TransactionRepository interface {
	List(ctx context.Context, q *request_models.TransactionQuery) ([]response_models.TransactionRow, int64, error)
	Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionProjection = `
orders.id AS collect_id,
orders.school_id,
orders.custom_order_id,
orders.gateway_name AS gateway,
orders.student_name,
orders.student_id,
orders.student_email,
order_statuses.order_amount,
order_statuses.transaction_amount,
order_statuses.status,
order_statuses.payment_mode,
order_statuses.payment_time,
order_statuses.bank_reference,
order_statuses.payment_message,
orders.created_at`

func (r *transactionRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Joins("LEFT JOIN order_statuses ON order_statuses.collect_id = orders.id AND order_statuses.deleted_at IS NULL").
		Where("orders.deleted_at IS NULL")
}

func (r *transactionRepository) filtered(ctx context.Context, q *request_models.TransactionQuery) *gorm.DB {
	tx := r.joined(ctx)

	if q.Status != "" {
		tx = tx.Where("order_statuses.status = ?", q.Status)
	}
	if q.SchoolID != "" {
		tx = tx.Where("orders.school_id = ?", q.SchoolID)
	}
	if from := q.DateFromUnix(); from != 0 {
		tx = tx.Where("order_statuses.payment_time >= ?", from)
	}
	if to := q.DateToUnix(); to != 0 {
		tx = tx.Where("order_statuses.payment_time <= ?", to)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"orders.custom_order_id ILIKE ? OR orders.student_name ILIKE ? OR orders.student_email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	return tx
}

func (r *transactionRepository) List(ctx context.Context, q *request_models.TransactionQuery) ([]response_models.TransactionRow, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if q.Descending() {
		direction = "DESC"
	}

	rows := make([]response_models.TransactionRow, 0, q.Limit)
	err := r.filtered(ctx, q).
		Select(transactionProjection).
		Order(q.SortColumn() + " " + direction).
		Offset(q.Offset()).
		Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

const statsProjection = `
COUNT(*) AS total_transactions,
COALESCE(SUM(order_statuses.transaction_amount), 0) AS total_amount,
COALESCE(SUM(CASE WHEN order_statuses.status = 'success' THEN 1 ELSE 0 END), 0) AS successful_transactions,
COALESCE(SUM(CASE WHEN order_statuses.status = 'failed' THEN 1 ELSE 0 END), 0) AS failed_transactions,
COALESCE(SUM(CASE WHEN order_statuses.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_transactions,
COALESCE(SUM(CASE WHEN order_statuses.status = 'success' THEN order_statuses.transaction_amount ELSE 0 END), 0) AS successful_amount`

func (r *transactionRepository) Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error) {
	var stats response_models.TransactionStats
	err := r.filtered(ctx, q).
		Select(statsProjection).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
