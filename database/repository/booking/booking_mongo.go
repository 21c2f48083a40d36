// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) ListByParticipant(ctx context.Context, userID, role string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := "provider_id"
	if role == models.RoleClient {
		field = "client_id"
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, bson.M{field: userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) CompleteFromPayment(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Guarded on status so a booking the provider already completed (or a
	// repeated gateway callback) is a no-op rather than a second write.
	filter := bson.M{"id": bookingID, "status": bson.M{"$ne": models.BookingCompleted}}
	update := bson.M{"$set": bson.M{
		"status":         models.BookingCompleted,
		"payment_status": models.PaymentCompleted,
		"updated_at":     time.Now(),
	}}
	if _, err := r.bookingColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("booking payment completion failed: %w", err)
	}
	return nil
}
