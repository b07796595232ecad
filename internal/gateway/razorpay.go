package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// GatewayOrder is the gateway-side order opened for a payment request.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor units (paise)
	Currency string
	Receipt  string
}

// GatewayPayment is the gateway's record of a captured payment.
type GatewayPayment struct {
	ID      string
	Method  string
	Email   string
	Contact string
	Bank    string
	Amount  float64 // minor units
	Status  string
}

type RazorpayGateway struct {
	client *razorpay.Client
	cfg    RazorpayConfig
}

func NewRazorpayGateway(cfg RazorpayConfig) (*RazorpayGateway, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials not configured")
	}
	return &RazorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}, nil
}

func (g *RazorpayGateway) KeyID() string {
	return g.cfg.KeyID
}

// CreateOrder opens a gateway order. Amount is in major units and is
// converted to paise here.
func (g *RazorpayGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   int(amount * 100),
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating razorpay order: %w", err)
	}

	return &GatewayOrder{
		ID:       asString(resp["id"]),
		Amount:   int64(amount * 100),
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// FetchPayment loads the gateway's view of a payment. Callers trust this
// over anything the client supplied.
func (g *RazorpayGateway) FetchPayment(paymentID string) (*GatewayPayment, error) {
	resp, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching razorpay payment: %w", err)
	}

	return &GatewayPayment{
		ID:      asString(resp["id"]),
		Method:  asString(resp["method"]),
		Email:   asString(resp["email"]),
		Contact: asString(resp["contact"]),
		Bank:    asString(resp["bank"]),
		Amount:  asFloat(resp["amount"]),
		Status:  asString(resp["status"]),
	}, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// under the key secret and compares it to the supplied signature.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return ComputeSignature(orderID, paymentID, g.cfg.KeySecret) == signature
}

func ComputeSignature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
