package response_models

import "schoolpay/internal/models/db_models"

type CreatePaymentResponse struct {
	OrderID         string                 `json:"order_id"`
	RazorpayOrderID string                 `json:"razorpay_order_id"`
	Amount          float64                `json:"amount"`
	Currency        string                 `json:"currency"`
	KeyID           string                 `json:"key_id"`
	PaymentToken    string                 `json:"payment_token"`
	StudentInfo     db_models.StudentInfo  `json:"student_info"`
	RedirectURL     string                 `json:"redirect_url"`
	CheckoutURL     string                 `json:"checkout_url"`
}

type VerifyPaymentResponse struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

type PaymentDetailsResponse struct {
	Order       *db_models.Order       `json:"order"`
	OrderStatus *db_models.OrderStatus `json:"order_status"`
}
