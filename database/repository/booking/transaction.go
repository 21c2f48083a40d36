// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	txnFn := func(sc mongo.SessionContext) error {
		// Status-guarded conditional update: only an AVAILABLE slot flips to
		// BOOKED. Zero matched documents means a concurrent booking already
		// claimed it, so the whole transaction aborts.
		filter := bson.M{"id": booking.SlotID, "status": models.SlotAvailable}
		update := bson.M{"$set": bson.M{
			"status":     models.SlotBooked,
			"updated_at": time.Now(),
		}}
		res, err := r.slotColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("slot status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := database.WithTransaction(ctx, r.client, txnFn); err != nil {
		return err
	}
	return nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	txnFn := func(sc mongo.SessionContext) error {
		// The slot may already be gone (deleted by a completion path); a
		// missing slot is fine, the booking is still cancellable.
		filter := bson.M{"id": slotID, "status": models.SlotBooked}
		update := bson.M{"$set": bson.M{
			"status":     models.SlotAvailable,
			"updated_at": time.Now(),
		}}
		if _, err := r.slotColl.UpdateOne(sc, filter, update); err != nil {
			return fmt.Errorf("slot reopen failed: %w", err)
		}

		return r.setStatus(sc, bookingID, models.BookingCancelled)
	}

	return database.WithTransaction(ctx, r.client, txnFn)
}

func (r *mongoBookingRepo) Complete(ctx context.Context, bookingID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	txnFn := func(sc mongo.SessionContext) error {
		// Completion removes the slot row for good; the booking keeps its
		// own start/end/duration snapshot.
		if _, err := r.slotColl.DeleteOne(sc, bson.M{"id": slotID}); err != nil {
			return fmt.Errorf("slot delete failed: %w", err)
		}
		return r.setStatus(sc, bookingID, models.BookingCompleted)
	}

	return database.WithTransaction(ctx, r.client, txnFn)
}

func (r *mongoBookingRepo) setStatus(sc mongo.SessionContext, bookingID, status string) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	res, err := r.bookingColl.UpdateOne(sc, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("booking status update failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
