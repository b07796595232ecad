package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"schoolpay/internal/models/db_models"
	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, request request_models.CreatePaymentRequest) (*response_models.CreatePaymentResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.CreatePaymentResponse), args.Error(1)
}

func (m *MockPaymentService) VerifyPayment(ctx context.Context, request request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.VerifyPaymentResponse), args.Error(1)
}

func (m *MockPaymentService) HandleWebhook(ctx context.Context, request *request_models.WebhookRequest, ip, userAgent string) (*db_models.OrderStatus, error) {
	args := m.Called(ctx, request, ip, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.OrderStatus), args.Error(1)
}

func (m *MockPaymentService) GetPaymentDetails(ctx context.Context, orderCode string) (*response_models.PaymentDetailsResponse, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.PaymentDetailsResponse), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AuthResponse), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AuthResponse), args.Error(1)
}

func (m *MockAccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockAccountService) ChangePassword(ctx context.Context, userID uuid.UUID, request request_models.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, request)
	return args.Error(0)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TransactionListResponse), args.Error(1)
}

func (m *MockTransactionService) ListBySchool(ctx context.Context, schoolID string, q *request_models.TransactionQuery) (*response_models.TransactionListResponse, error) {
	args := m.Called(ctx, schoolID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TransactionListResponse), args.Error(1)
}

func (m *MockTransactionService) Status(ctx context.Context, orderCode string) (*response_models.TransactionStatusResponse, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TransactionStatusResponse), args.Error(1)
}

func (m *MockTransactionService) Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TransactionStats), args.Error(1)
}
