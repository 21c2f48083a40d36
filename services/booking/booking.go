package booking

import (
	"context"
	"errors"
	"strconv"
	"time"

	bookingRepo "slotify/database/repository/booking"
	"slotify/domain"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.BookingWithParticipants, error) {
	logger := utils.GetLogger()

	if input.SlotID == "" {
		return nil, domain.ValidationError{Field: "slotId", Msg: "slot id is required"}
	}

	slot, err := s.Slots.GetByID(ctx, input.SlotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			logger.Warn("CreateBooking: slot not found", zap.String("slotId", input.SlotID))
			return nil, domain.NotFoundError{Resource: "slot"}
		}
		return nil, domain.InternalError{Err: err}
	}

	// Early rejection for the common case. The status-guarded update inside
	// Reserve is the authoritative double-booking guard; this read is only
	// a cheaper first answer.
	if slot.Status != models.SlotAvailable {
		return nil, domain.ConflictError{Resource: "slot", Msg: "slot is not available"}
	}

	provider, err := s.Users.GetPublicProfile(ctx, slot.ProviderID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "provider"}
		}
		return nil, domain.InternalError{Err: err}
	}

	var finalCost float64
	if input.FinalCost != "" {
		finalCost, err = strconv.ParseFloat(input.FinalCost, 64)
		if err != nil || finalCost < 0 {
			return nil, domain.ValidationError{Field: "finalCost", Msg: "invalid final cost specified"}
		}
	} else {
		finalCost = DeriveCost(provider.HourlyRate, slot.Duration)
	}

	now := time.Now()
	newBooking := &models.Booking{
		ID:          uuid.New().String(),
		SlotID:      slot.ID,
		ClientID:    input.ClientID,
		ProviderID:  slot.ProviderID,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Duration:    slot.Duration,
		Status:      models.BookingPending,
		FinalCost:   finalCost,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Reserve(ctx, newBooking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
			logger.Warn("CreateBooking: lost slot race", zap.String("slotId", slot.ID))
			return nil, domain.ConflictError{Resource: "slot", Msg: "slot is not available"}
		}
		logger.Error("CreateBooking: reservation transaction failed", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to create booking", Err: err}
	}

	logger.Info("Created booking",
		zap.String("bookingId", newBooking.ID),
		zap.String("slotId", slot.ID),
		zap.String("clientId", input.ClientID))

	return s.withParticipants(ctx, newBooking)
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if requesterID != b.ClientID && requesterID != b.ProviderID {
		return nil, domain.ForbiddenError{Msg: "you can only cancel your own bookings"}
	}
	if b.Status == models.BookingCancelled {
		return nil, domain.ConflictError{Resource: "booking", Msg: "booking is already cancelled"}
	}
	if b.Status == models.BookingCompleted {
		return nil, domain.ConflictError{Resource: "booking", Msg: "cannot cancel a completed booking"}
	}

	if err := s.Repo.Cancel(ctx, b.ID, b.SlotID); err != nil {
		utils.GetLogger().Error("CancelBooking: transaction failed", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to cancel booking", Err: err}
	}
	b.Status = models.BookingCancelled

	utils.GetLogger().Info("Cancelled booking",
		zap.String("bookingId", b.ID), zap.String("requesterId", requesterID))
	return s.withParticipants(ctx, b)
}

func (s *DefaultBookingService) CompleteBooking(ctx context.Context, requesterID, bookingID string) (*models.BookingWithParticipants, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if requesterID != b.ProviderID {
		return nil, domain.ForbiddenError{Msg: "you can only complete your own bookings"}
	}
	if b.Status == models.BookingCompleted {
		return nil, domain.ConflictError{Resource: "booking", Msg: "booking is already completed"}
	}
	if b.Status == models.BookingCancelled {
		return nil, domain.ConflictError{Resource: "booking", Msg: "cannot complete a cancelled booking"}
	}

	if err := s.Repo.Complete(ctx, b.ID, b.SlotID); err != nil {
		utils.GetLogger().Error("CompleteBooking: transaction failed", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to complete booking", Err: err}
	}
	b.Status = models.BookingCompleted

	utils.GetLogger().Info("Completed booking",
		zap.String("bookingId", b.ID), zap.String("providerId", requesterID))
	return s.withParticipants(ctx, b)
}

func (s *DefaultBookingService) GetBookingByID(ctx context.Context, bookingID string) (*models.BookingWithParticipants, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.withParticipants(ctx, b)
}

func (s *DefaultBookingService) GetMyBookings(ctx context.Context, userID, role string) ([]models.BookingWithParticipants, error) {
	if userID == "" {
		return nil, domain.ValidationError{Field: "userId", Msg: "user id is required"}
	}
	bookings, err := s.Repo.ListByParticipant(ctx, userID, role)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}

	out := make([]models.BookingWithParticipants, 0, len(bookings))
	for i := range bookings {
		joined, err := s.withParticipants(ctx, &bookings[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *joined)
	}
	return out, nil
}

func (s *DefaultBookingService) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, domain.ValidationError{Field: "bookingId", Msg: "booking id is required"}
	}
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, domain.InternalError{Err: err}
	}
	return b, nil
}

// withParticipants joins a booking with both participant projections. A
// participant account that has since been deleted leaves its projection
// zero-valued rather than failing the read.
func (s *DefaultBookingService) withParticipants(ctx context.Context, b *models.Booking) (*models.BookingWithParticipants, error) {
	joined := &models.BookingWithParticipants{Booking: *b}

	if client, err := s.Users.GetByID(ctx, b.ClientID); err == nil {
		joined.Client = models.ClientSummary{
			ID:          client.ID,
			Name:        client.Name,
			Email:       client.Email,
			PhoneNumber: client.PhoneNumber,
		}
	}
	if provider, err := s.Users.GetPublicProfile(ctx, b.ProviderID); err == nil {
		joined.Provider = *provider
	}
	return joined, nil
}
