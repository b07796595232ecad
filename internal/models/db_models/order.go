package db_models

type StudentInfo struct {
	Name  string `gorm:"column:student_name" json:"name"`
	ID    string `gorm:"column:student_id" json:"id"`
	Email string `gorm:"column:student_email" json:"email"`
}

// Order is a single payment request. Amount and currency are immutable
// after creation; rows are never deleted.
type Order struct {
	BaseModel
	SchoolID    string      `gorm:"index" json:"school_id"`
	TrusteeID   string      `json:"trustee_id"`
	StudentInfo StudentInfo `gorm:"embedded" json:"student_info"`
	GatewayName string      `gorm:"default:'razorpay'" json:"gateway_name"`
	// Externally visible order code, e.g. ORD_1712345678901_k3j9x2m1q.
	CustomOrderID string  `gorm:"uniqueIndex" json:"custom_order_id"`
	OrderAmount   float64 `json:"order_amount"`
	Currency      string  `gorm:"size:3;default:'INR'" json:"currency"`
}
