package slot

import (
	"context"
	"time"

	slotRepo "slotify/database/repository/slot"
	userRepo "slotify/database/repository/user"
	"slotify/models"
)

// CreateSlotInput carries the fields a provider submits when publishing
// availability.
type CreateSlotInput struct {
	ProviderID string
	StartTime  time.Time
	EndTime    time.Time
	Duration   int // minutes
}

type SlotService interface {
	CreateSlot(ctx context.Context, input CreateSlotInput) (*models.Slot, error)
	// ListSlots returns a provider's slots filtered by status (default
	// AVAILABLE), ascending by start time, each joined with the provider's
	// public profile.
	ListSlots(ctx context.Context, providerID, statusFilter string) ([]models.SlotWithProvider, error)
	// ListOwnSlots returns the calling provider's slots with nested booking
	// summaries, descending by start time.
	ListOwnSlots(ctx context.Context, providerID string) ([]models.SlotWithBookings, error)
	DeleteSlot(ctx context.Context, requesterID, slotID string) error
	// DeleteExpiredSlots purges never-booked slots whose end time has
	// passed; used by the cleanup sweeper.
	DeleteExpiredSlots(ctx context.Context, now time.Time) (int64, error)
}

// DefaultSlotService is the production implementation.
type DefaultSlotService struct {
	Repo  slotRepo.SlotRepository
	Users userRepo.UserRepository
}
