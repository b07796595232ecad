package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"schoolpay/internal/gateway"
	"schoolpay/internal/models/db_models"
	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"
)

// --- Repository mocks ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *db_models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomOrderID(ctx context.Context, code string) (*db_models.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Order), args.Error(1)
}

type MockOrderStatusRepository struct {
	mock.Mock
}

func (m *MockOrderStatusRepository) Create(ctx context.Context, status *db_models.OrderStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockOrderStatusRepository) FindByCollectID(ctx context.Context, collectID uuid.UUID) (*db_models.OrderStatus, error) {
	args := m.Called(ctx, collectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) UpdateByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	args := m.Called(ctx, collectID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) UpsertByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	args := m.Called(ctx, collectID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.OrderStatus), args.Error(1)
}

type MockWebhookLogRepository struct {
	mock.Mock
}

func (m *MockWebhookLogRepository) Create(ctx context.Context, log *db_models.WebhookLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) List(ctx context.Context, q *request_models.TransactionQuery) ([]response_models.TransactionRow, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]response_models.TransactionRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) Stats(ctx context.Context, q *request_models.TransactionQuery) (*response_models.TransactionStats, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TransactionStats), args.Error(1)
}

// --- Gateway mock ---

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) KeyID() string {
	return "rzp_test_key"
}

func (m *MockGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*gateway.GatewayOrder, error) {
	args := m.Called(amount, currency, receipt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.GatewayOrder), args.Error(1)
}

func (m *MockGateway) FetchPayment(paymentID string) (*gateway.GatewayPayment, error) {
	args := m.Called(paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.GatewayPayment), args.Error(1)
}

func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

// --- In-memory fakes for webhook reconciliation tests ---

// fakeStatusRepo keeps one row per collect id, mirroring the
// upsert-by-order-reference semantics of the real repository.
type fakeStatusRepo struct {
	rows map[uuid.UUID]*db_models.OrderStatus
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{rows: make(map[uuid.UUID]*db_models.OrderStatus)}
}

func (f *fakeStatusRepo) Create(ctx context.Context, status *db_models.OrderStatus) error {
	f.rows[status.CollectID] = status
	return nil
}

func (f *fakeStatusRepo) FindByCollectID(ctx context.Context, collectID uuid.UUID) (*db_models.OrderStatus, error) {
	return f.rows[collectID], nil
}

func (f *fakeStatusRepo) UpdateByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	status, ok := f.rows[collectID]
	if !ok {
		return nil, nil
	}
	applyFakeFields(status, fields)
	return status, nil
}

func (f *fakeStatusRepo) UpsertByCollectID(ctx context.Context, collectID uuid.UUID, fields map[string]interface{}) (*db_models.OrderStatus, error) {
	if _, ok := f.rows[collectID]; !ok {
		f.rows[collectID] = &db_models.OrderStatus{CollectID: collectID}
	}
	return f.UpdateByCollectID(ctx, collectID, fields)
}

func applyFakeFields(status *db_models.OrderStatus, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "order_amount":
			status.OrderAmount = value.(float64)
		case "transaction_amount":
			status.TransactionAmount = value.(float64)
		case "payment_mode":
			status.PaymentMode = db_models.PaymentMode(value.(string))
		case "payment_details":
			status.PaymentDetails = value.(string)
		case "bank_reference":
			status.BankReference = value.(string)
		case "payment_message":
			status.PaymentMessage = value.(string)
		case "status":
			status.Status = db_models.PaymentStatus(value.(string))
		case "error_message":
			status.ErrorMessage = value.(string)
		case "payment_time":
			status.PaymentTime = value.(int64)
		}
	}
}

// fakeLogRepo appends every audit row it is handed.
type fakeLogRepo struct {
	logs []*db_models.WebhookLog
}

func (f *fakeLogRepo) Create(ctx context.Context, log *db_models.WebhookLog) error {
	f.logs = append(f.logs, log)
	return nil
}
