package db_models

import "github.com/google/uuid"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusSuccess   PaymentStatus = "success"
	StatusFailed    PaymentStatus = "failed"
	StatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

type PaymentMode string

const (
	ModePending      PaymentMode = "pending"
	ModeUPI          PaymentMode = "upi"
	ModeCard         PaymentMode = "card"
	ModeNetBanking   PaymentMode = "netbanking"
	ModeWallet       PaymentMode = "wallet"
	ModeBankTransfer PaymentMode = "bank_transfer"
)

// OrderStatus holds the current payment outcome for one Order. There is
// one row per order by convention; verify and webhook both overwrite it
// in place, so no state history is retained.
type OrderStatus struct {
	BaseModel
	CollectID         uuid.UUID     `gorm:"type:uuid;index" json:"collect_id"`
	OrderAmount       float64       `json:"order_amount"`
	TransactionAmount float64       `json:"transaction_amount"`
	PaymentMode       PaymentMode   `gorm:"size:20" json:"payment_mode"`
	PaymentDetails    string        `json:"payment_details"`
	BankReference     string        `json:"bank_reference"`
	PaymentMessage    string        `json:"payment_message"`
	Status            PaymentStatus `gorm:"size:20;index;default:'pending'" json:"status"`
	ErrorMessage      string        `gorm:"default:'NA'" json:"error_message"`
	PaymentTime       int64         `gorm:"index" json:"payment_time"`

	RazorpayOrderID   string `gorm:"index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `gorm:"index" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`

	Order Order `gorm:"foreignKey:CollectID" json:"-"`
}
