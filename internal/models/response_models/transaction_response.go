package response_models

import "schoolpay/internal/models/db_models"

// TransactionRow is the flattened Order ⋈ OrderStatus projection. Status
// fields are pointers because an Order may not have a status row yet;
// such orders still appear in listings.
type TransactionRow struct {
	CollectID         string                `json:"collect_id"`
	SchoolID          string                `json:"school_id"`
	CustomOrderID     string                `json:"custom_order_id"`
	Gateway           string                `json:"gateway"`
	StudentInfo       db_models.StudentInfo `json:"student_info" gorm:"embedded"`
	OrderAmount       *float64              `json:"order_amount"`
	TransactionAmount *float64              `json:"transaction_amount"`
	Status            *string               `json:"status"`
	PaymentMode       *string               `json:"payment_mode"`
	PaymentTime       *int64                `json:"payment_time"`
	BankReference     *string               `json:"bank_reference"`
	PaymentMessage    *string               `json:"payment_message"`
	CreatedAt         int64                 `json:"created_at"`
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	Limit        int   `json:"limit"`
	HasNext      bool  `json:"has_next"`
	HasPrev      bool  `json:"has_prev"`
}

type TransactionListResponse struct {
	Transactions []TransactionRow `json:"transactions"`
	SchoolID     string           `json:"school_id,omitempty"`
	Pagination   Pagination       `json:"pagination"`
}

type TransactionStatusResponse struct {
	CustomOrderID     string                `json:"custom_order_id"`
	Status            string                `json:"status"`
	OrderAmount       float64               `json:"order_amount"`
	TransactionAmount *float64              `json:"transaction_amount,omitempty"`
	PaymentMode       *string               `json:"payment_mode,omitempty"`
	PaymentTime       *int64                `json:"payment_time,omitempty"`
	PaymentMessage    *string               `json:"payment_message,omitempty"`
	BankReference     *string               `json:"bank_reference,omitempty"`
	StudentInfo       db_models.StudentInfo `json:"student_info"`
	SchoolID          string                `json:"school_id"`
	Gateway           string                `json:"gateway"`
	CreatedAt         int64                 `json:"created_at"`
}

type TransactionStats struct {
	TotalTransactions      int64   `json:"total_transactions"`
	TotalAmount            float64 `json:"total_amount"`
	SuccessfulTransactions int64   `json:"successful_transactions"`
	FailedTransactions     int64   `json:"failed_transactions"`
	PendingTransactions    int64   `json:"pending_transactions"`
	SuccessfulAmount       float64 `json:"successful_amount"`
	SuccessRate            float64 `json:"success_rate"`
}
