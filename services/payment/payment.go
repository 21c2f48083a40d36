package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"slotify/domain"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultPaymentService) CreateOrder(ctx context.Context, clientID, bookingID string, amount float64) (*models.PaymentOrder, error) {
	if bookingID == "" || amount <= 0 {
		return nil, domain.ValidationError{Msg: "amount and booking id are required"}
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, domain.InternalError{Err: err}
	}
	if booking.ClientID != clientID {
		return nil, domain.ForbiddenError{Msg: "you can only pay for your own bookings"}
	}

	receipt := fmt.Sprintf("booking_rcptid_%s", uuid.NewString()[:8])
	notes := map[string]interface{}{
		"userId":    clientID,
		"bookingId": bookingID,
	}
	orderID, err := s.Gateway.CreateOrder(amount, DefaultCurrency, receipt, notes)
	if err != nil {
		utils.GetLogger().Error("CreateOrder: gateway call failed", zap.Error(err))
		return nil, domain.InternalError{Msg: "unable to create order", Err: err}
	}

	record := &models.BookingPayment{
		BookingID: bookingID,
		OrderID:   orderID,
		Amount:    amount,
		Currency:  DefaultCurrency,
		Status:    models.PaymentPending,
	}
	if err := s.Repo.Upsert(ctx, record); err != nil {
		utils.GetLogger().Error("CreateOrder: failed to persist payment record", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to record order", Err: err}
	}

	utils.GetLogger().Info("Created payment order",
		zap.String("orderId", orderID), zap.String("bookingId", bookingID))

	return &models.PaymentOrder{
		OrderID:   orderID,
		BookingID: bookingID,
		Amount:    amount,
		Currency:  DefaultCurrency,
	}, nil
}

func (s *DefaultPaymentService) ValidatePayment(ctx context.Context, orderID, paymentID, signature string) (*models.BookingPayment, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, domain.ValidationError{Msg: "please provide valid payment data"}
	}

	if !s.verifySignature(orderID, paymentID, signature) {
		utils.GetLogger().Warn("ValidatePayment: signature mismatch", zap.String("orderId", orderID))
		return nil, domain.ValidationError{Msg: "invalid signature"}
	}

	now := time.Now()
	record, err := s.Repo.MarkCompleted(ctx, orderID, paymentID, signature, now)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "payment order"}
		}
		return nil, domain.InternalError{Msg: "failed to finalise payment", Err: err}
	}

	// Cascade to the booking. COMPLETED is terminal, so a booking already
	// completed by the provider (or a repeated callback) is a no-op here.
	if err := s.Bookings.CompleteFromPayment(ctx, record.BookingID); err != nil {
		utils.GetLogger().Error("ValidatePayment: booking cascade failed", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to complete booking", Err: err}
	}

	utils.GetLogger().Info("Payment verified",
		zap.String("orderId", orderID), zap.String("bookingId", record.BookingID))
	return record, nil
}

// verifySignature recomputes the gateway's HMAC-SHA256 over
// orderId|paymentId and compares it to the supplied signature in constant
// time.
func (s *DefaultPaymentService) verifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.Secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
