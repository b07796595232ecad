package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolpay/internal/gateway"
	"schoolpay/internal/models/db_models"
	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"
	"schoolpay/internal/repositories"
	"schoolpay/pkg/logger"
	"schoolpay/pkg/utils"
)

// PaymentGateway is the slice of the gateway adapter the workflow needs.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*gateway.GatewayOrder, error)
	FetchPayment(paymentID string) (*gateway.GatewayPayment, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type PaymentConfig struct {
	FrontendURL string
}

type PaymentService interface {
	CreatePayment(ctx context.Context, request request_models.CreatePaymentRequest) (*response_models.CreatePaymentResponse, error)
	VerifyPayment(ctx context.Context, request request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, request *request_models.WebhookRequest, ip, userAgent string) (*db_models.OrderStatus, error)
	GetPaymentDetails(ctx context.Context, orderCode string) (*response_models.PaymentDetailsResponse, error)
}

type paymentService struct {
	orderRepo      repositories.OrderRepository
	statusRepo     repositories.OrderStatusRepository
	webhookLogRepo repositories.WebhookLogRepository
	gw             PaymentGateway
	cfg            PaymentConfig
}

func NewPaymentService(
	orderRepo repositories.OrderRepository,
	statusRepo repositories.OrderStatusRepository,
	webhookLogRepo repositories.WebhookLogRepository,
	gw PaymentGateway,
	cfg PaymentConfig,
) PaymentService {
	return &paymentService{
		orderRepo:      orderRepo,
		statusRepo:     statusRepo,
		webhookLogRepo: webhookLogRepo,
		gw:             gw,
		cfg:            cfg,
	}
}

// CreatePayment opens an Order, a gateway-side order and a pending
// OrderStatus, then mints the checkout token. There is no rollback: a
// gateway failure after the Order write leaves the Order without a
// gateway counterpart.
func (p *paymentService) CreatePayment(ctx context.Context, request request_models.CreatePaymentRequest) (*response_models.CreatePaymentResponse, error) {
	currency := request.Currency
	if currency == "" {
		currency = "INR"
	}

	orderCode := utils.GenerateOrderCode()

	order := &db_models.Order{
		SchoolID:  request.SchoolID,
		TrusteeID: request.TrusteeID,
		StudentInfo: db_models.StudentInfo{
			Name:  request.StudentInfo.Name,
			ID:    request.StudentInfo.ID,
			Email: strings.ToLower(request.StudentInfo.Email),
		},
		GatewayName:   "razorpay",
		CustomOrderID: orderCode,
		OrderAmount:   request.OrderAmount,
		Currency:      currency,
	}

	if err := p.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: create order: %v", utils.ErrDatabaseError, err)
	}

	gatewayOrder, err := p.gw.CreateOrder(request.OrderAmount, currency, orderCode, map[string]interface{}{
		"school_id":       request.SchoolID,
		"student_id":      request.StudentInfo.ID,
		"student_name":    request.StudentInfo.Name,
		"custom_order_id": orderCode,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}

	status := &db_models.OrderStatus{
		CollectID:         order.ID,
		OrderAmount:       request.OrderAmount,
		TransactionAmount: request.OrderAmount,
		PaymentMode:       db_models.ModePending,
		PaymentDetails:    "Payment initiated",
		BankReference:     "pending",
		PaymentMessage:    "Payment order created",
		Status:            db_models.StatusPending,
		ErrorMessage:      "NA",
		PaymentTime:       time.Now().Unix(),
		RazorpayOrderID:   gatewayOrder.ID,
	}
	if err := p.statusRepo.Create(ctx, status); err != nil {
		return nil, fmt.Errorf("%w: create order status: %v", utils.ErrDatabaseError, err)
	}

	paymentToken, err := utils.CreatePaymentToken(utils.PaymentClaims{
		OrderID:         orderCode,
		Amount:          request.OrderAmount,
		Currency:        currency,
		SchoolID:        request.SchoolID,
		StudentInfo:     order.StudentInfo,
		RazorpayOrderID: gatewayOrder.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("sign payment token: %w", err)
	}

	logger.Log.Info("payment order created",
		zap.String("custom_order_id", orderCode),
		zap.String("razorpay_order_id", gatewayOrder.ID),
		zap.Float64("amount", request.OrderAmount),
	)

	return &response_models.CreatePaymentResponse{
		OrderID:         orderCode,
		RazorpayOrderID: gatewayOrder.ID,
		Amount:          request.OrderAmount,
		Currency:        currency,
		KeyID:           p.gw.KeyID(),
		PaymentToken:    paymentToken,
		StudentInfo:     order.StudentInfo,
		RedirectURL:     fmt.Sprintf("%s/payment/%s", p.cfg.FrontendURL, orderCode),
		CheckoutURL:     fmt.Sprintf("%s/checkout?token=%s", p.cfg.FrontendURL, paymentToken),
	}, nil
}

// VerifyPayment checks the gateway signature, then overwrites the
// OrderStatus with what the gateway reports for the payment. A signature
// mismatch performs no writes.
func (p *paymentService) VerifyPayment(ctx context.Context, request request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error) {
	if !p.gw.VerifySignature(request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
		return nil, utils.ErrInvalidSignature
	}

	order, err := p.orderRepo.FindByCustomOrderID(ctx, request.CustomOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	payment, err := p.gw.FetchPayment(request.RazorpayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}

	paymentDetails := payment.Email
	if paymentDetails == "" {
		paymentDetails = payment.Contact
	}
	if paymentDetails == "" {
		paymentDetails = "success"
	}
	bankReference := payment.Bank
	if bankReference == "" {
		bankReference = "RAZORPAY"
	}

	_, err = p.statusRepo.UpdateByCollectID(ctx, order.ID, map[string]interface{}{
		"payment_mode":        payment.Method,
		"payment_details":     paymentDetails,
		"bank_reference":      bankReference,
		"payment_message":     "Payment successful",
		"status":              string(db_models.StatusSuccess),
		"razorpay_payment_id": request.RazorpayPaymentID,
		"razorpay_order_id":   request.RazorpayOrderID,
		"razorpay_signature":  request.RazorpaySignature,
		"transaction_amount":  payment.Amount / 100,
		"payment_time":        time.Now().Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: update order status: %v", utils.ErrDatabaseError, err)
	}

	logger.Log.Info("payment verified",
		zap.String("custom_order_id", request.CustomOrderID),
		zap.String("razorpay_payment_id", request.RazorpayPaymentID),
	)

	return &response_models.VerifyPaymentResponse{
		OrderID:   request.CustomOrderID,
		PaymentID: request.RazorpayPaymentID,
		Status:    string(db_models.StatusSuccess),
	}, nil
}

// HandleWebhook reconciles an asynchronous gateway notification into the
// OrderStatus and always appends one WebhookLog row, whatever the
// outcome. The status upsert is last-write-wins.
func (p *paymentService) HandleWebhook(ctx context.Context, request *request_models.WebhookRequest, ip, userAgent string) (*db_models.OrderStatus, error) {
	info := request.OrderInfo
	info.Normalize()

	webhookLog := &db_models.WebhookLog{
		EventType:   "payment_update",
		Payload:     []byte(request.Raw()),
		Status:      db_models.WebhookProcessed,
		OrderID:     info.OrderID,
		ProcessedAt: time.Now().Unix(),
		IPAddress:   ip,
		UserAgent:   userAgent,
	}

	order, err := p.resolveOrder(ctx, info.OrderID)
	if err != nil {
		return nil, p.failWebhook(ctx, webhookLog, err)
	}
	if order == nil {
		return nil, p.failWebhook(ctx, webhookLog, utils.ErrOrderNotFound)
	}

	if !db_models.PaymentStatus(info.Status).Valid() {
		return nil, p.failWebhook(ctx, webhookLog, fmt.Errorf("invalid payment status %q", info.Status))
	}

	status, err := p.statusRepo.UpsertByCollectID(ctx, order.ID, map[string]interface{}{
		"order_amount":       info.OrderAmount,
		"transaction_amount": info.TransactionAmount,
		"payment_mode":       info.PaymentMode,
		"payment_details":    info.PaymentDetails,
		"bank_reference":     info.BankReference,
		"payment_message":    info.PaymentMessage,
		"status":             info.Status,
		"error_message":      info.ErrorMessage,
		"payment_time":       parsePaymentTime(info.PaymentTime),
	})
	if err != nil {
		return nil, p.failWebhook(ctx, webhookLog, fmt.Errorf("%w: upsert order status: %v", utils.ErrDatabaseError, err))
	}

	webhookLog.Status = db_models.WebhookSuccess
	if err := p.webhookLogRepo.Create(ctx, webhookLog); err != nil {
		return nil, fmt.Errorf("%w: write webhook log: %v", utils.ErrDatabaseError, err)
	}

	logger.Log.Info("webhook processed",
		zap.String("order_id", info.OrderID),
		zap.String("status", info.Status),
	)

	return status, nil
}

// failWebhook finalizes the audit row for a failed notification and
// hands the original error back.
func (p *paymentService) failWebhook(ctx context.Context, webhookLog *db_models.WebhookLog, cause error) error {
	webhookLog.Status = db_models.WebhookFailed
	webhookLog.ErrorMessage = cause.Error()
	// The audit row carries the display string, not the sentinel text.
	if errors.Is(cause, utils.ErrOrderNotFound) {
		webhookLog.ErrorMessage = "Order not found"
	}
	if err := p.webhookLogRepo.Create(ctx, webhookLog); err != nil {
		logger.Log.Error("failed to persist webhook log", zap.Error(err))
	}
	return cause
}

// resolveOrder finds the target Order by external code when the id
// carries the expected prefix, by internal identity otherwise.
func (p *paymentService) resolveOrder(ctx context.Context, orderID string) (*db_models.Order, error) {
	if strings.HasPrefix(orderID, "ORD_") {
		order, err := p.orderRepo.FindByCustomOrderID(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		return order, nil
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, nil
	}
	order, err := p.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return order, nil
}

func parsePaymentTime(s string) int64 {
	if s == "" {
		return time.Now().Unix()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix()
		}
	}
	logger.Log.Warn("unparseable payment_time, using current time", zap.String("payment_time", s))
	return time.Now().Unix()
}

func (p *paymentService) GetPaymentDetails(ctx context.Context, orderCode string) (*response_models.PaymentDetailsResponse, error) {
	order, err := p.orderRepo.FindByCustomOrderID(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	status, err := p.statusRepo.FindByCollectID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.PaymentDetailsResponse{
		Order:       order,
		OrderStatus: status,
	}, nil
}
