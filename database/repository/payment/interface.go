// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	// Upsert creates or replaces the payment record for a booking, keyed by
	// booking id. A re-created order overwrites the previous pending one.
	Upsert(ctx context.Context, payment *models.BookingPayment) error
	GetByOrderID(ctx context.Context, orderID string) (*models.BookingPayment, error)
	// MarkCompleted records the verified payment details against the order
	// and returns the updated record.
	MarkCompleted(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (*models.BookingPayment, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a MongoDB-backed PaymentRepository.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	repo := &mongoPaymentRepo{coll: db.Collection("booking_payments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
