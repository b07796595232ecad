package db_models

import "gorm.io/datatypes"

type WebhookOutcome string

const (
	WebhookProcessed WebhookOutcome = "processed"
	WebhookSuccess   WebhookOutcome = "success"
	WebhookFailed    WebhookOutcome = "failed"
)

// WebhookLog is an append-only audit row, one per inbound gateway
// notification regardless of processing outcome. Never read by business
// logic.
type WebhookLog struct {
	BaseModel
	EventType string         `gorm:"index" json:"event_type"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	Status    WebhookOutcome `gorm:"size:20;default:'processed'" json:"status"`
	// External order code from the notification, loosely coupled to Order.
	OrderID           string `gorm:"index" json:"order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
	ProcessedAt       int64  `gorm:"index" json:"processed_at"`
	IPAddress         string `json:"ip_address,omitempty"`
	UserAgent         string `json:"user_agent,omitempty"`
}
