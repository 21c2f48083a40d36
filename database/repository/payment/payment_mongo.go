// File: database/repository/payment/payment_mongo.go
package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPaymentRepo) Upsert(ctx context.Context, payment *models.BookingPayment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"booking_id": payment.BookingID}
	update := bson.M{
		"$set": bson.M{
			"order_id":   payment.OrderID,
			"amount":     payment.Amount,
			"currency":   payment.Currency,
			"status":     payment.Status,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"booking_id": payment.BookingID,
			"created_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting payment for booking %s: %w", payment.BookingID, err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.BookingPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.BookingPayment
	if err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoPaymentRepo) MarkCompleted(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (*models.BookingPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"order_id": orderID}
	update := bson.M{"$set": bson.M{
		"payment_id": paymentID,
		"signature":  signature,
		"status":     models.PaymentCompleted,
		"paid_at":    paidAt,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.BookingPayment
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
