package models

import "time"

// Payment record statuses.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// BookingPayment tracks the gateway order attached to a booking. At most
// one record exists per booking; it is upserted when an order is (re)created
// and finalised when the gateway signature verifies.
type BookingPayment struct {
	BookingID string     `bson:"booking_id" json:"bookingId"`
	OrderID   string     `bson:"order_id" json:"orderId"`
	PaymentID string     `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Signature string     `bson:"signature,omitempty" json:"-"`
	Amount    float64    `bson:"amount" json:"amount"`
	Currency  string     `bson:"currency" json:"currency"`
	Status    string     `bson:"status" json:"status"`
	PaidAt    *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}
