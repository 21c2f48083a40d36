package payment

import (
	"context"

	bookingRepo "slotify/database/repository/booking"
	paymentRepo "slotify/database/repository/payment"
	"slotify/models"
)

// DefaultCurrency is used for all gateway orders.
const DefaultCurrency = "INR"

type PaymentService interface {
	// CreateOrder mints a gateway order for a booking the caller owns and
	// upserts the payment record. Booking status is untouched.
	CreateOrder(ctx context.Context, clientID, bookingID string, amount float64) (*models.PaymentOrder, error)
	// ValidatePayment verifies the gateway signature over orderId|paymentId
	// and, on success, finalises the payment record and cascades the
	// booking to COMPLETED. Safe to call repeatedly with the same inputs.
	ValidatePayment(ctx context.Context, orderID, paymentID, signature string) (*models.BookingPayment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Gateway  Gateway
	// Secret is the gateway key secret shared with the HMAC signer.
	Secret string
}
