// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotUnavailable is returned by Reserve when the slot's status-guarded
// update matches no document: some concurrent booking won the slot first
// (or the slot vanished). Callers surface it as a conflict.
var ErrSlotUnavailable = errors.New("slot is not available")

type BookingRepository interface {
	// Reserve atomically flips the slot AVAILABLE -> BOOKED and inserts the
	// booking. Both writes commit together or neither does.
	Reserve(ctx context.Context, booking *models.Booking) error
	// Cancel atomically reopens the slot (BOOKED -> AVAILABLE; a missing
	// slot is a no-op) and marks the booking CANCELLED.
	Cancel(ctx context.Context, bookingID, slotID string) error
	// Complete atomically deletes the slot row and marks the booking
	// COMPLETED.
	Complete(ctx context.Context, bookingID, slotID string) error
	// CompleteFromPayment marks the booking COMPLETED unless it already is;
	// an already-terminal booking is left untouched.
	CompleteFromPayment(ctx context.Context, bookingID string) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByParticipant returns bookings where the user is the client (role
	// CLIENT) or the provider (otherwise), descending by creation time.
	ListByParticipant(ctx context.Context, userID, role string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	client      *mongo.Client
	bookingColl *mongo.Collection
	slotColl    *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository. It
// holds both the bookings and slots collections because every state
// transition touches the pair inside one transaction.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &mongoBookingRepo{
		client:      db.Client(),
		bookingColl: db.Collection("bookings"),
		slotColl:    db.Collection("slots"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
