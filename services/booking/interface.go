package booking

import (
	"context"

	bookingRepo "slotify/database/repository/booking"
	slotRepo "slotify/database/repository/slot"
	userRepo "slotify/database/repository/user"
	"slotify/models"
)

// CreateBookingInput carries a client's reservation request. FinalCost is
// the raw decimal string from the request; when empty the cost is derived
// from the provider's hourly rate and the slot duration.
type CreateBookingInput struct {
	ClientID    string
	SlotID      string
	FinalCost   string
	Description string
}

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.BookingWithParticipants, error)
	CancelBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error)
	CompleteBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.BookingWithParticipants, error)
	// GetMyBookings returns bookings where the user participates as client
	// (role CLIENT) or provider (otherwise), newest first.
	GetMyBookings(ctx context.Context, userID, role string) ([]models.BookingWithParticipants, error)
}

// DefaultBookingService is the production implementation of the slot/booking
// state machine.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Slots slotRepo.SlotRepository
	Users userRepo.UserRepository
}
