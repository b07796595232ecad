package request_models

import "encoding/json"

type StudentInfoRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	ID    string `json:"id" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreatePaymentRequest struct {
	SchoolID    string             `json:"school_id" binding:"required"`
	TrusteeID   string             `json:"trustee_id" binding:"required"`
	StudentInfo StudentInfoRequest `json:"student_info" binding:"required"`
	OrderAmount float64            `json:"order_amount" binding:"required,gt=0"`
	Currency    string             `json:"currency" binding:"omitempty,oneof=INR USD"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	CustomOrderID     string `json:"custom_order_id" binding:"required"`
}

// WebhookOrderInfo is the order_info block of a gateway notification.
// Two field names have historically arrived misspelled from the gateway
// (payemnt_details, Payment_message); Normalize folds either spelling
// into the canonical field.
type WebhookOrderInfo struct {
	OrderID           string  `json:"order_id" binding:"required"`
	OrderAmount       float64 `json:"order_amount" binding:"gte=0"`
	TransactionAmount float64 `json:"transaction_amount" binding:"gte=0"`
	PaymentMode       string  `json:"payment_mode"`
	PaymentDetails    string  `json:"payment_details"`
	PaymentDetailsAlt string  `json:"payemnt_details"`
	BankReference     string  `json:"bank_reference"`
	PaymentMessage    string  `json:"payment_message"`
	PaymentMessageAlt string  `json:"Payment_message"`
	Status            string  `json:"status" binding:"required"`
	ErrorMessage      string  `json:"error_message"`
	PaymentTime       string  `json:"payment_time"`
}

func (o *WebhookOrderInfo) Normalize() {
	if o.PaymentDetails == "" {
		o.PaymentDetails = o.PaymentDetailsAlt
	}
	if o.PaymentMessage == "" {
		o.PaymentMessage = o.PaymentMessageAlt
	}
	if o.ErrorMessage == "" {
		o.ErrorMessage = "NA"
	}
}

// Status is not constrained here: a structurally valid notification with
// an out-of-range payment status must still reach the handler so it ends
// up in the webhook audit trail rather than bouncing at the boundary.
type WebhookRequest struct {
	Status    int               `json:"status"`
	OrderInfo *WebhookOrderInfo `json:"order_info" binding:"required"`
}

// Raw re-serializes the notification for the audit log.
func (w *WebhookRequest) Raw() json.RawMessage {
	b, _ := json.Marshal(w)
	return b
}
