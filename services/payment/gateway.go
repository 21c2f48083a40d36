package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the slice of the payment gateway this core consumes: order
// creation only. Success notification arrives later from the client side
// and is verified locally by signature, never trusted blindly.
type Gateway interface {
	CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (orderID string, err error)
}

// RazorpayGateway is the production Gateway backed by the Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway constructs a Razorpay-backed gateway.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (string, error) {
	// Razorpay amounts are in the currency's smallest unit.
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("gateway order creation failed: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("gateway returned no order id")
	}
	return orderID, nil
}
