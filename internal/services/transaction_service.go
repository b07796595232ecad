package services

import (
	"context"
	"math"

	"schoolpay/internal/models/db_models"
	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"
	"schoolpay/internal/repositories"
	"schoolpay/pkg/utils"
)

type TransactionService interface {
	List(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error)
	ListBySchool(ctx context.Context, schoolID string, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error)
	Status(ctx context.Context, orderCode string) (*response_models.TransactionStatusResponse, error)
	Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error)
}

type transactionService struct {
	txnRepo    repositories.TransactionRepository
	orderRepo  repositories.OrderRepository
	statusRepo repositories.OrderStatusRepository
}

func NewTransactionService(
	txnRepo repositories.TransactionRepository,
	orderRepo repositories.OrderRepository,
	statusRepo repositories.OrderStatusRepository,
) TransactionService {
	return &transactionService{
		txnRepo:    txnRepo,
		orderRepo:  orderRepo,
		statusRepo: statusRepo,
	}
}

func (t *transactionService) List(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, total, err := t.txnRepo.List(ctx, q)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TransactionListResponse{
		Transactions: rows,
		Pagination:   BuildPagination(q.Page, q.Limit, total),
	}, nil
}

func (t *transactionService) ListBySchool(ctx context.Context, schoolID string, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error) {
	q.SchoolID = schoolID
	resp, err := t.List(ctx, q)
	if err != nil {
		return nil, err
	}
	resp.SchoolID = schoolID
	return resp, nil
}

func (t *transactionService) Status(ctx context.Context, orderCode string) (*response_models.TransactionStatusResponse, error) {
	order, err := t.orderRepo.FindByCustomOrderID(ctx, orderCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrTransactionNotFound
	}

	status, err := t.statusRepo.FindByCollectID(ctx, order.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.TransactionStatusResponse{
		CustomOrderID: orderCode,
		Status:        string(db_models.StatusPending),
		OrderAmount:   order.OrderAmount,
		StudentInfo:   order.StudentInfo,
		SchoolID:      order.SchoolID,
		Gateway:       order.GatewayName,
		CreatedAt:     order.CreatedAt,
	}

	if status != nil {
		mode := string(status.PaymentMode)
		resp.Status = string(status.Status)
		resp.OrderAmount = status.OrderAmount
		resp.TransactionAmount = &status.TransactionAmount
		resp.PaymentMode = &mode
		resp.PaymentTime = &status.PaymentTime
		resp.PaymentMessage = &status.PaymentMessage
		resp.BankReference = &status.BankReference
	}

	return resp, nil
}

func (t *transactionService) Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error) {
	// Stats accept school/date filters only.
	q.Status = ""
	q.Search = ""
	if err := q.Validate(); err != nil {
		return nil, err
	}

	stats, err := t.txnRepo.Stats(ctx, q)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats.SuccessRate = SuccessRate(stats.SuccessfulTransactions, stats.TotalTransactions)
	return stats, nil
}

// BuildPagination derives the page metadata for a result window.
func BuildPagination(page, limit int, total int64) response_models.Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return response_models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		Limit:        limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}

// SuccessRate is successful/total as a percentage, two decimals, zero
// for the empty set.
func SuccessRate(successful, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(successful)/float64(total)*10000) / 100
}
